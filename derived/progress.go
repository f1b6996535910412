// Package derived turns raw activity logs into the time-windowed state the
// dashboard shows: lesson-progress percentages and assessment retake
// eligibility.
package derived

import (
	"context"
	"math"
	"sync"

	"github.com/lumenlearn/lumen-go/gateway"
	"github.com/lumenlearn/lumen-go/models"
)

// progressKey is a structured composite key; string concatenation of the
// two ids would collide for e.g. (1, 23) and (12, 3).
type progressKey struct {
	userID  int
	topicID int
}

// ProgressTracker caches per-user, per-topic completion summaries.
// Completions and the lesson catalogue load asynchronously, so a cached
// snapshot may be partial (total unknown); Load replaces it with the
// authoritative summary.
type ProgressTracker struct {
	gw *gateway.Gateway

	mu    sync.Mutex
	cache map[progressKey]models.TopicProgress
}

func NewProgressTracker(gw *gateway.Gateway) *ProgressTracker {
	return &ProgressTracker{
		gw:    gw,
		cache: make(map[progressKey]models.TopicProgress),
	}
}

// Progress is the synchronous best-effort accessor. It returns the cached
// snapshot, which may be stale or partial, or a zero snapshot when nothing
// has loaded yet.
func (t *ProgressTracker) Progress(userID, topicID int) models.TopicProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	if snapshot, ok := t.cache[progressKey{userID, topicID}]; ok {
		return snapshot
	}
	return models.TopicProgress{UserID: userID, TopicID: topicID}
}

// Load fetches the authoritative summary and updates the cache.
func (t *ProgressTracker) Load(ctx context.Context, userID, topicID int) (models.TopicProgress, error) {
	progress, err := t.gw.TopicProgress(ctx, userID, topicID)
	if err != nil {
		return models.TopicProgress{UserID: userID, TopicID: topicID}, err
	}

	t.mu.Lock()
	t.cache[progressKey{userID, topicID}] = *progress
	t.mu.Unlock()
	return *progress, nil
}

// Observe records counts computed locally, e.g. when completions arrive
// before the lesson catalogue. total may be zero for "not yet known"; the
// next Load or Observe with a real total recomputes the percentage.
func (t *ProgressTracker) Observe(userID, topicID, completed, total int) models.TopicProgress {
	snapshot := models.TopicProgress{
		UserID:     userID,
		TopicID:    topicID,
		Completed:  completed,
		Total:      total,
		Percentage: Percentage(completed, total),
	}

	t.mu.Lock()
	t.cache[progressKey{userID, topicID}] = snapshot
	t.mu.Unlock()
	return snapshot
}

// Percentage is round(100 * completed / total), 0 when total is 0.
func Percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
