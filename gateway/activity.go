package gateway

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/normalize"
)

type completePayload struct {
	TimeSpent int `json:"timeSpent,omitempty"`
}

// MarkLessonComplete records a completion for the current user. timeSpent
// is minutes; zero means not tracked.
func (g *Gateway) MarkLessonComplete(ctx context.Context, lessonID, timeSpent int) (*models.LessonCompletion, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/lessons/%d/complete", lessonID)
	raw, err := g.write(ctx, http.MethodPost, origin, path, completePayload{TimeSpent: timeSpent})
	if err != nil {
		g.log.Printf("gateway: mark lesson %d complete failed: %v", lessonID, err)
		return nil, err
	}
	return normalize.Completion(raw)
}

// UnmarkLessonComplete reverses a completion by deleting its record.
func (g *Gateway) UnmarkLessonComplete(ctx context.Context, lessonID int) error {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/api/lessons/%d/complete", lessonID)
	if _, err := g.write(ctx, http.MethodDelete, origin, path, nil); err != nil {
		g.log.Printf("gateway: unmark lesson %d complete failed: %v", lessonID, err)
		return err
	}
	return nil
}

// RecordView appends a view record for the current user. The record is
// advisory, so failures are logged and swallowed; the lesson still renders.
func (g *Gateway) RecordView(ctx context.Context, lessonID int) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		g.log.Debugf("gateway: view of lesson %d not recorded, backend unreachable", lessonID)
		return
	}

	path := fmt.Sprintf("/api/lessons/%d/view", lessonID)
	if _, err := g.write(ctx, http.MethodPost, verdict.Origin, path, nil); err != nil {
		g.log.Printf("gateway: record view of lesson %d failed: %v", lessonID, err)
	}
}

func (g *Gateway) ListCompletions(ctx context.Context, userID int) ([]models.LessonCompletion, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.Completions(ctx, userID), nil
	}

	raws, err := g.fetchList(ctx, verdict.Origin, fmt.Sprintf("/api/users/%d/lesson-completions", userID))
	if err != nil {
		g.log.Printf("gateway: list completions for user %d failed, using synthetic data: %v", userID, err)
		return g.fallback.Completions(ctx, userID), nil
	}
	return normalize.Completions(raws), nil
}

func (g *Gateway) ListAttempts(ctx context.Context, userID int) ([]models.AssessmentAttempt, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.Attempts(ctx, userID), nil
	}

	raws, err := g.fetchList(ctx, verdict.Origin, fmt.Sprintf("/api/users/%d/attempts", userID))
	if err != nil {
		g.log.Printf("gateway: list attempts for user %d failed, using synthetic data: %v", userID, err)
		return g.fallback.Attempts(ctx, userID), nil
	}
	return normalize.Attempts(raws), nil
}

// TopicProgress asks the backend for the authoritative completion summary.
// Without a backend the summary is computed over the synthetic dataset.
func (g *Gateway) TopicProgress(ctx context.Context, userID, topicID int) (*models.TopicProgress, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.syntheticProgress(ctx, userID, topicID), nil
	}

	path := fmt.Sprintf("/api/users/%d/topics/%d/progress", userID, topicID)
	raw, _, err := g.fetchOne(ctx, verdict.Origin, path)
	if err != nil {
		g.log.Printf("gateway: topic progress for user %d topic %d failed, using synthetic data: %v", userID, topicID, err)
		return g.syntheticProgress(ctx, userID, topicID), nil
	}
	return normalize.Progress(raw)
}

func (g *Gateway) syntheticProgress(ctx context.Context, userID, topicID int) *models.TopicProgress {
	var completed int
	for _, completion := range g.fallback.Completions(ctx, userID) {
		if completion.TopicID == topicID {
			completed++
		}
	}
	total := len(g.fallback.LessonsByTopic(ctx, topicID))

	progress := &models.TopicProgress{UserID: userID, TopicID: topicID, Completed: completed, Total: total}
	if total > 0 {
		progress.Percentage = int(math.Round(100 * float64(completed) / float64(total)))
	}
	return progress
}
