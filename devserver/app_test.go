package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/lumen-go/config"
	"github.com/lumenlearn/lumen-go/logging"
	"github.com/lumenlearn/lumen-go/session"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := NewMemStore()
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewApp(cfg, store, logging.Discard())
}

func mintToken(t *testing.T, userID int, role string) string {
	t.Helper()
	token, err := session.Mint(userID, role, "test-secret", time.Hour)
	require.NoError(t, err)
	return token
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(buf)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestHealthEndpointIsOpen(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, "GET", "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTopicsRequireAuth(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, "GET", "/api/topics", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListTopicsUsesSnakeCaseWire(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	resp := request(t, app, "GET", "/api/topics", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var topics []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&topics))
	require.Len(t, topics, 3)
	assert.Contains(t, topics[0], "student_count")
	assert.Contains(t, topics[0], "has_assessment")
	assert.Equal(t, true, topics[0]["has_assessment"])
	assert.Equal(t, false, topics[1]["has_assessment"])
}

func TestLoginMintsUsableToken(t *testing.T) {
	app := newTestApp(t)

	resp := request(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email": "sam.ortiz@lumenlearn.dev",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)

	profile := request(t, app, "GET", "/api/users/2", token, nil)
	assert.Equal(t, fiber.StatusOK, profile.StatusCode)
}

func TestCreateLessonRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	student := mintToken(t, 2, "student")

	resp := request(t, app, "POST", "/api/lessons", student, map[string]interface{}{
		"topicId": 1, "title": "Forbidden",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateLessonEchoesSnakeCase(t *testing.T) {
	app := newTestApp(t)
	admin := mintToken(t, 1, "admin")

	resp := request(t, app, "POST", "/api/lessons", admin, map[string]interface{}{
		"topicId": 2, "title": "New Lesson", "duration": "12 min", "order": 3,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	result := decodeMap(t, resp)
	assert.Equal(t, float64(2), result["topic_id"])
	assert.Equal(t, "New Lesson", result["title"])
	assert.Equal(t, float64(3), result["sequence_order"])
}

func TestAssessmentByTopicAnswers404ForAbsence(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	found := request(t, app, "GET", "/api/topics/1/assessment", token, nil)
	assert.Equal(t, fiber.StatusOK, found.StatusCode)

	absent := request(t, app, "GET", "/api/topics/2/assessment", token, nil)
	assert.Equal(t, fiber.StatusNotFound, absent.StatusCode)
}

func TestCompletionAndProgressRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	for _, lessonID := range []string{"1", "2"} {
		resp := request(t, app, "POST", "/api/lessons/"+lessonID+"/complete", token, map[string]interface{}{
			"timeSpent": 14,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := request(t, app, "GET", "/api/users/2/topics/1/progress", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	progress := decodeMap(t, resp)
	assert.Equal(t, float64(2), progress["completed"])
	assert.Equal(t, float64(3), progress["total"])
	assert.Equal(t, float64(67), progress["percentage"])
}

func TestUncompleteDeletesRecord(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	request(t, app, "POST", "/api/lessons/1/complete", token, nil)
	resp := request(t, app, "DELETE", "/api/lessons/1/complete", token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	progress := decodeMap(t, request(t, app, "GET", "/api/users/2/topics/1/progress", token, nil))
	assert.Equal(t, float64(0), progress["completed"])
}

func TestSubmitAssessmentScoresAndEnforcesCooldown(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	resp := request(t, app, "POST", "/api/assessments/1/submit", token, map[string]interface{}{
		"answers": []int{0, 1}, "timeSpent": 9,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	attempt := decodeMap(t, resp)
	assert.Equal(t, float64(50), attempt["score"])
	assert.Equal(t, float64(1), attempt["correct_answers"])
	assert.Equal(t, float64(2), attempt["total_questions"])

	// A second attempt inside the 24h cooldown is refused.
	retry := request(t, app, "POST", "/api/assessments/1/submit", token, map[string]interface{}{
		"answers": []int{0, 0}, "timeSpent": 5,
	})
	assert.Equal(t, fiber.StatusTooManyRequests, retry.StatusCode)
}

func TestUpdateOwnProfile(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	resp := request(t, app, "PUT", "/api/users/2", token, map[string]interface{}{
		"bio": "Learning in public", "location": "Porto",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeMap(t, resp)
	assert.Equal(t, "Learning in public", result["bio"])
	assert.Equal(t, "Porto", result["location"])
}

func TestUpdateOtherProfileForbidden(t *testing.T) {
	app := newTestApp(t)
	token := mintToken(t, 2, "student")

	resp := request(t, app, "PUT", "/api/users/1", token, map[string]interface{}{
		"bio": "Hijacked",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
