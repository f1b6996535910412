package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/resolver"
	"github.com/lumenlearn/lumen-go/session"
	"github.com/lumenlearn/lumen-go/synthetic"
)

// testGateway builds a gateway against the given origin, or against no
// backend at all when origin is empty.
func testGateway(t *testing.T, origin string, tokens session.TokenSource) (*Gateway, *synthetic.Provider) {
	t.Helper()
	var candidates []string
	if origin != "" {
		candidates = []string{origin}
	}
	res := resolver.New(candidates, "http://localhost:3000", time.Second, 30*time.Second, logging.Discard())
	provider := synthetic.NewProvider().WithLatency(0)
	return New(res, provider, tokens, logging.Discard()), provider
}

func TestUnreachableBackendServesSyntheticTopics(t *testing.T) {
	gw, provider := testGateway(t, "", session.Anonymous)
	ctx := context.Background()

	first, err := gw.ListTopics(ctx)
	require.NoError(t, err)
	second, err := gw.ListTopics(ctx)
	require.NoError(t, err)

	assert.Equal(t, provider.Topics(ctx), first)
	assert.Equal(t, first, second)
}

func TestUnreachableBackendRejectsWrites(t *testing.T) {
	gw, _ := testGateway(t, "", session.Anonymous)

	_, err := gw.CreateLesson(context.Background(), models.Lesson{Title: "X", TopicID: 5})
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	_, err = gw.SubmitAssessment(context.Background(), 1, []int{0}, 5)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestFailingReadFallsBackToSynthetic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw, provider := testGateway(t, server.URL, session.Anonymous)
	ctx := context.Background()

	topics, err := gw.ListTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, provider.Topics(ctx), topics)
}

func TestListTopicsNormalizesWireRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			w.WriteHeader(http.StatusOK)
		case "/api/topics":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"id": 1, "title": "T", "student_count": 12, "lesson_count": 3,
					"has_assessment": true, "image_url": "/img.png"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Anonymous)
	topics, err := gw.ListTopics(context.Background())
	require.NoError(t, err)

	require.Len(t, topics, 1)
	assert.Equal(t, 12, topics[0].StudentCount)
	assert.True(t, topics[0].HasAssessment)
	assert.Equal(t, "/img.png", topics[0].Image)
}

func TestForeignShapedRecordsDroppedFromList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			w.WriteHeader(http.StatusOK)
		case "/api/topics/1/lessons":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"id": 1, "topic_id": 1, "title": "Good"},
				{"id": 2, "topicId": 1, "title": "Bad", "duration": "5 min", "duration_minutes": 5},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Anonymous)
	lessons, err := gw.ListLessonsByTopic(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, lessons, 1)
	assert.Equal(t, "Good", lessons[0].Title)
}

func TestAssessmentNotFoundIsAbsenceNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Anonymous)
	assessment, err := gw.GetAssessmentByTopic(context.Background(), 3)

	assert.NoError(t, err)
	assert.Nil(t, assessment)
}

func TestCreateLessonNormalizesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/health":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/lessons" && r.Method == http.MethodPost:
			var body map[string]interface{}
			json.NewDecoder(r.Body).Decode(&body)
			// The server answers with its own snake_case convention.
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": 42, "topic_id": body["topicId"], "title": body["title"],
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Static("tok"))
	lesson, err := gw.CreateLesson(context.Background(), models.Lesson{Title: "X", TopicID: 5})
	require.NoError(t, err)

	assert.Equal(t, 42, lesson.ID)
	assert.Equal(t, 5, lesson.TopicID)
	assert.Equal(t, "X", lesson.Title)
}

func TestWriteFailureSurfacesToCaller(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Static("tok"))
	_, err := gw.CreateTopic(context.Background(), models.Topic{Title: "T"})

	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestUnauthorizedWriteIsNotBackendDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Anonymous)
	_, err := gw.MarkLessonComplete(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBearerHeaderAlwaysSent(t *testing.T) {
	var header string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/topics" && r.Header.Get("Authorization") != "" {
			header = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode([]map[string]interface{}{})
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Static("secret-token"))
	_, err := gw.ListTopics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", header)
}

func TestRecordViewSwallowsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw, _ := testGateway(t, server.URL, session.Static("tok"))
	// Must not panic or surface anything.
	gw.RecordView(context.Background(), 1)
}

func TestTopicProgressWithoutBackend(t *testing.T) {
	gw, _ := testGateway(t, "", session.Anonymous)

	progress, err := gw.TopicProgress(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, progress.Completed)
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 0, progress.Percentage)
}
