package api

import (
	"context"
	"net/http"

	"github.com/sker65/headsup/client/internal/types"
)

// Health reports server health.
func Health(ctx context.Context, r *Requester) (*types.HealthResponse, error) {
	res, err := Request[types.HealthResponse](ctx, r, http.MethodGet, prefix+"/health")
	if err != nil {
		return nil, err
	}
	return &res, nil
}
