package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/normalize"
)

func (g *Gateway) ListLessonsByTopic(ctx context.Context, topicID int) ([]models.Lesson, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.LessonsByTopic(ctx, topicID), nil
	}

	raws, err := g.fetchList(ctx, verdict.Origin, fmt.Sprintf("/api/topics/%d/lessons", topicID))
	if err != nil {
		g.log.Printf("gateway: list lessons for topic %d failed, using synthetic data: %v", topicID, err)
		return g.fallback.LessonsByTopic(ctx, topicID), nil
	}
	return normalize.Lessons(raws), nil
}

func (g *Gateway) GetLesson(ctx context.Context, id int) (*models.Lesson, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.Lesson(ctx, id), nil
	}

	raw, _, err := g.fetchOne(ctx, verdict.Origin, fmt.Sprintf("/api/lessons/%d", id))
	if err != nil {
		g.log.Printf("gateway: get lesson %d failed, using synthetic data: %v", id, err)
		return g.fallback.Lesson(ctx, id), nil
	}
	return normalize.Lesson(raw)
}

func (g *Gateway) CreateLesson(ctx context.Context, lesson models.Lesson) (*models.Lesson, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := g.write(ctx, http.MethodPost, origin, "/api/lessons", lesson)
	if err != nil {
		g.log.Printf("gateway: create lesson failed: %v", err)
		return nil, err
	}
	return normalize.Lesson(raw)
}

func (g *Gateway) UpdateLesson(ctx context.Context, id int, partial map[string]interface{}) (*models.Lesson, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := g.write(ctx, http.MethodPut, origin, fmt.Sprintf("/api/lessons/%d", id), partial)
	if err != nil {
		g.log.Printf("gateway: update lesson %d failed: %v", id, err)
		return nil, err
	}
	return normalize.Lesson(raw)
}

func (g *Gateway) DeleteLesson(ctx context.Context, id int) error {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return err
	}

	if _, err := g.write(ctx, http.MethodDelete, origin, fmt.Sprintf("/api/lessons/%d", id), nil); err != nil {
		g.log.Printf("gateway: delete lesson %d failed: %v", id, err)
		return err
	}
	return nil
}
