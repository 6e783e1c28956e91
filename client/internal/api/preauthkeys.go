package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sker65/headsup/client/internal/types"
)

// ListPreAuthKeys returns all pre-auth keys.
func ListPreAuthKeys(ctx context.Context, r *Requester) (*types.ListPreAuthKeysResponse, error) {
	res, err := Request[types.ListPreAuthKeysResponse](ctx, r, http.MethodGet, prefix+"/preauthkey")
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreatePreAuthKey creates a key. The response is the only place its secret
// appears.
func CreatePreAuthKey(ctx context.Context, r *Requester, req types.CreatePreAuthKeyRequest) (*types.CreatePreAuthKeyResponse, error) {
	res, err := Request[types.CreatePreAuthKeyResponse](ctx, r, http.MethodPost, prefix+"/preauthkey", WithJSONBody(req))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeletePreAuthKey removes a key. The id travels in the query string.
func DeletePreAuthKey(ctx context.Context, r *Requester, id string) error {
	q := url.Values{}
	q.Set("id", id)
	_, err := r.Do(ctx, http.MethodDelete, withQuery(prefix+"/preauthkey", q))
	return err
}

// ExpirePreAuthKey expires a key immediately.
func ExpirePreAuthKey(ctx context.Context, r *Requester, id string) error {
	_, err := r.Do(ctx, http.MethodPost, prefix+"/preauthkey/expire", WithJSONBody(types.ExpirePreAuthKeyRequest{ID: id}))
	return err
}
