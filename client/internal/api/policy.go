package api

import (
	"context"
	"net/http"

	"github.com/sker65/headsup/client/internal/types"
)

// GetPolicy fetches the access-control policy text.
func GetPolicy(ctx context.Context, r *Requester) (*types.PolicyResponse, error) {
	res, err := Request[types.PolicyResponse](ctx, r, http.MethodGet, prefix+"/policy")
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SetPolicy replaces the policy document.
func SetPolicy(ctx context.Context, r *Requester, req types.SetPolicyRequest) (*types.PolicyResponse, error) {
	res, err := Request[types.PolicyResponse](ctx, r, http.MethodPut, prefix+"/policy", WithJSONBody(req))
	if err != nil {
		return nil, err
	}
	return &res, nil
}
