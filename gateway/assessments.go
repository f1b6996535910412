package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/normalize"
)

// GetAssessmentByTopic returns (nil, nil) when the topic has no assessment.
// A 404 here is the expected signal for absence, not an error; it neither
// falls back to synthetic data nor produces log noise.
func (g *Gateway) GetAssessmentByTopic(ctx context.Context, topicID int) (*models.Assessment, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.AssessmentByTopic(ctx, topicID), nil
	}

	raw, status, err := g.fetchOne(ctx, verdict.Origin, fmt.Sprintf("/api/topics/%d/assessment", topicID))
	if status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		g.log.Printf("gateway: get assessment for topic %d failed, using synthetic data: %v", topicID, err)
		return g.fallback.AssessmentByTopic(ctx, topicID), nil
	}
	return normalize.Assessment(raw)
}

type submitPayload struct {
	Answers   []int `json:"answers"`
	TimeSpent int   `json:"timeSpent"`
}

// SubmitAssessment records a new attempt. Attempts are immutable; a retake
// always creates a new record on the backend.
func (g *Gateway) SubmitAssessment(ctx context.Context, assessmentID int, answers []int, timeSpent int) (*models.AssessmentAttempt, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/assessments/%d/submit", assessmentID)
	raw, err := g.write(ctx, http.MethodPost, origin, path, submitPayload{Answers: answers, TimeSpent: timeSpent})
	if err != nil {
		g.log.Printf("gateway: submit assessment %d failed: %v", assessmentID, err)
		return nil, err
	}
	return normalize.Attempt(raw)
}
