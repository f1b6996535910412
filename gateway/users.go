package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lumenlearn/lumen-go/models"
	"github.com/lumenlearn/lumen-go/normalize"
)

func (g *Gateway) ListUsers(ctx context.Context) ([]models.User, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.Users(ctx), nil
	}

	raws, err := g.fetchList(ctx, verdict.Origin, "/api/users")
	if err != nil {
		g.log.Printf("gateway: list users failed, using synthetic data: %v", err)
		return g.fallback.Users(ctx), nil
	}
	return normalize.Users(raws), nil
}

func (g *Gateway) GetUser(ctx context.Context, id int) (*models.User, error) {
	verdict := g.resolver.Resolve(ctx)
	if !verdict.Reachable {
		return g.fallback.User(ctx, id), nil
	}

	raw, _, err := g.fetchOne(ctx, verdict.Origin, fmt.Sprintf("/api/users/%d", id))
	if err != nil {
		g.log.Printf("gateway: get user %d failed, using synthetic data: %v", id, err)
		return g.fallback.User(ctx, id), nil
	}
	return normalize.User(raw)
}

// UpdateUser mutates profile fields through an explicit partial update;
// user records change no other way.
func (g *Gateway) UpdateUser(ctx context.Context, id int, partial map[string]interface{}) (*models.User, error) {
	origin, err := g.resolveWrite(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := g.write(ctx, http.MethodPut, origin, fmt.Sprintf("/api/users/%d", id), partial)
	if err != nil {
		g.log.Printf("gateway: update user %d failed: %v", id, err)
		return nil, err
	}
	return normalize.User(raw)
}
