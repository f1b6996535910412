package derived

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lumen-go/gateway"
	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/resolver"
	"github.com/lumenlearn/lumen-go/session"
	"github.com/lumenlearn/lumen-go/synthetic"
)

func newGateway(t *testing.T, origin string) *gateway.Gateway {
	t.Helper()
	var candidates []string
	if origin != "" {
		candidates = []string{origin}
	}
	res := resolver.New(candidates, "http://localhost:3000", time.Second, 30*time.Second, logging.Discard())
	provider := synthetic.NewProvider().WithLatency(0)
	return gateway.New(res, provider, session.Static("test-token"), logging.Discard())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 100, Percentage(3, 3))
	assert.Equal(t, 33, Percentage(1, 3))
}

func TestProgressBeforeAnyLoad(t *testing.T) {
	tracker := NewProgressTracker(newGateway(t, ""))

	snapshot := tracker.Progress(2, 1)

	assert.Equal(t, 2, snapshot.UserID)
	assert.Equal(t, 1, snapshot.TopicID)
	assert.Zero(t, snapshot.Total)
}

func TestObserveToleratesUnknownTotal(t *testing.T) {
	tracker := NewProgressTracker(newGateway(t, ""))

	// Completions arrived before the lesson catalogue.
	partial := tracker.Observe(2, 1, 2, 0)
	assert.Equal(t, 0, partial.Percentage)

	// Catalogue arrived; the snapshot is recomputed.
	full := tracker.Observe(2, 1, 2, 3)
	assert.Equal(t, 67, full.Percentage)
	assert.Equal(t, full, tracker.Progress(2, 1))
}

func TestLoadFetchesAuthoritativeProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/users/2/topics/1/progress" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"user_id": 2, "topic_id": 1, "completed": 2, "total": 3, "percentage": 67,
			})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tracker := NewProgressTracker(newGateway(t, server.URL))
	snapshot, err := tracker.Load(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.Completed)
	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 67, snapshot.Percentage)

	// The synchronous accessor now reads the cached snapshot.
	assert.Equal(t, snapshot, tracker.Progress(2, 1))
}

func TestLoadWithoutBackendUsesSyntheticCatalogue(t *testing.T) {
	tracker := NewProgressTracker(newGateway(t, ""))

	snapshot, err := tracker.Load(context.Background(), 2, 1)
	require.NoError(t, err)

	// No completions in the demo dataset, three lessons in topic 1.
	assert.Equal(t, 0, snapshot.Completed)
	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 0, snapshot.Percentage)
}
