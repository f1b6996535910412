package devserver

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/gateway"
	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/resolver"
	"github.com/lumenlearn/lumen-go/session"
	"github.com/lumenlearn/lumen-go/synthetic"
)

// startServer runs the devserver on a random port and returns its origin.
func startServer(t *testing.T) string {
	t.Helper()

	store, err := NewMemStore()
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := NewApp(cfg, store, logging.Discard())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go app.Listener(ln)
	t.Cleanup(func() { app.Shutdown() })

	origin := "http://" + ln.Addr().String()
	require.Eventually(t, func() bool {
		resp, err := http.Get(origin + "/api/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	return origin
}

func clientFor(t *testing.T, origin string, userID int, role string) *gateway.Gateway {
	t.Helper()
	token, err := session.Mint(userID, role, "test-secret", time.Hour)
	require.NoError(t, err)

	res := resolver.New([]string{origin}, "http://localhost:3000", time.Second, 30*time.Second, logging.Discard())
	provider := synthetic.NewProvider().WithLatency(0)
	return gateway.New(res, provider, session.Static(token), logging.Discard())
}

func TestGatewayAgainstDevserver(t *testing.T) {
	origin := startServer(t)
	ctx := context.Background()

	admin := clientFor(t, origin, 1, "admin")
	student := clientFor(t, origin, 2, "student")

	t.Run("topics arrive canonical", func(t *testing.T) {
		topics, err := student.ListTopics(ctx)
		require.NoError(t, err)
		require.Len(t, topics, 3)
		assert.Equal(t, "Web Development Basics", topics[0].Title)
		assert.True(t, topics[0].HasAssessment)
		assert.Equal(t, 128, topics[0].StudentCount)
	})

	t.Run("created lesson keeps its foreign key", func(t *testing.T) {
		lesson, err := admin.CreateLesson(ctx, models.Lesson{
			Title:    "Integration Lesson",
			TopicID:  2,
			Duration: "12 min",
			Order:    3,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, lesson.TopicID)
		assert.Equal(t, "Integration Lesson", lesson.Title)
		assert.NotZero(t, lesson.ID)
	})

	t.Run("assessment absence is nil", func(t *testing.T) {
		assessment, err := student.GetAssessmentByTopic(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, assessment)
	})

	t.Run("completions drive progress", func(t *testing.T) {
		_, err := student.MarkLessonComplete(ctx, 1, 14)
		require.NoError(t, err)
		_, err = student.MarkLessonComplete(ctx, 2, 18)
		require.NoError(t, err)

		progress, err := student.TopicProgress(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, progress.Completed)
		assert.Equal(t, 3, progress.Total)
		assert.Equal(t, 67, progress.Percentage)
	})

	t.Run("submitted attempt arrives canonical", func(t *testing.T) {
		attempt, err := student.SubmitAssessment(ctx, 1, []int{0, 0}, 9)
		require.NoError(t, err)
		assert.Equal(t, 100, attempt.Score)
		assert.Equal(t, 2, attempt.CorrectAnswers)
		assert.Equal(t, 1, attempt.AssessmentID)
		assert.Equal(t, 2, attempt.UserID)
	})

	t.Run("anonymous writes are unauthorized", func(t *testing.T) {
		res := resolver.New([]string{origin}, "http://localhost:3000", time.Second, 30*time.Second, logging.Discard())
		anonymous := gateway.New(res, synthetic.NewProvider().WithLatency(0), session.Anonymous, logging.Discard())

		_, err := anonymous.MarkLessonComplete(ctx, 1, 5)
		assert.ErrorIs(t, err, gateway.ErrUnauthorized)
	})
}
