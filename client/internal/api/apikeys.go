package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sker65/headsup/client/internal/types"
)

// ListAPIKeys returns the non-secret records of all API keys.
func ListAPIKeys(ctx context.Context, r *Requester) (*types.ListAPIKeysResponse, error) {
	res, err := Request[types.ListAPIKeysResponse](ctx, r, http.MethodGet, prefix+"/apikey")
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateAPIKey creates a key and returns its full secret, once.
func CreateAPIKey(ctx context.Context, r *Requester, req types.CreateAPIKeyRequest) (*types.CreateAPIKeyResponse, error) {
	res, err := Request[types.CreateAPIKeyResponse](ctx, r, http.MethodPost, prefix+"/apikey", WithJSONBody(req))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteAPIKey removes the key with the given prefix; id is sent when set.
func DeleteAPIKey(ctx context.Context, r *Requester, keyPrefix, id string) error {
	q := url.Values{}
	if id != "" {
		q.Set("id", id)
	}
	_, err := r.Do(ctx, http.MethodDelete, withQuery(prefix+"/apikey/"+seg(keyPrefix), q))
	return err
}

// ExpireAPIKey expires the key with the given prefix.
func ExpireAPIKey(ctx context.Context, r *Requester, keyPrefix, id string) error {
	body := types.ExpireAPIKeyRequest{Prefix: keyPrefix, ID: id}
	_, err := r.Do(ctx, http.MethodPost, prefix+"/apikey/expire", WithJSONBody(body))
	return err
}
