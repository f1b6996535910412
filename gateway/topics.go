package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/normalize"
)

func (g *Gateway) ListTopics(ctx context.Context) ([]models.Topic, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.Topics(ctx), nil
	}

	raws, err := g.fetchList(ctx, verdict.Origin, "/api/topics")
	if err != nil {
		g.log.Printf("gateway: list topics failed, using synthetic data: %v", err)
		return g.fallback.Topics(ctx), nil
	}
	return normalize.Topics(raws), nil
}

func (g *Gateway) GetTopic(ctx context.Context, id int) (*models.Topic, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.Topic(ctx, id), nil
	}

	raw, _, err := g.fetchOne(ctx, verdict.Origin, fmt.Sprintf("/api/topics/%d", id))
	if err != nil {
		g.log.Printf("gateway: get topic %d failed, using synthetic data: %v", id, err)
		return g.fallback.Topic(ctx, id), nil
	}
	return normalize.Topic(raw)
}

func (g *Gateway) CreateTopic(ctx context.Context, topic models.Topic) (*models.Topic, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := g.write(ctx, http.MethodPost, origin, "/api/topics", topic)
	if err != nil {
		g.log.Printf("gateway: create topic failed: %v", err)
		return nil, err
	}
	return normalize.Topic(raw)
}

// UpdateTopic applies a partial update; only the keys present in partial
// change on the backend.
func (g *Gateway) UpdateTopic(ctx context.Context, id int, partial map[string]interface{}) (*models.Topic, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := g.write(ctx, http.MethodPut, origin, fmt.Sprintf("/api/topics/%d", id), partial)
	if err != nil {
		g.log.Printf("gateway: update topic %d failed: %v", id, err)
		return nil, err
	}
	return normalize.Topic(raw)
}

func (g *Gateway) DeleteTopic(ctx context.Context, id int) error {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return err
	}

	if _, err := g.write(ctx, http.MethodDelete, origin, fmt.Sprintf("/api/topics/%d", id), nil); err != nil {
		g.log.Printf("gateway: delete topic %d failed: %v", id, err)
		return err
	}
	return nil
}
