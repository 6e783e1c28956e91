package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sker65/headsup/client/internal/types"
)

// ListNodes returns nodes, optionally only those owned by params.User.
func ListNodes(ctx context.Context, r *Requester, params types.ListNodesParams) (*types.ListNodesResponse, error) {
	q := url.Values{}
	if params.User != "" {
		q.Set("user", params.User)
	}
	res, err := Request[types.ListNodesResponse](ctx, r, http.MethodGet, withQuery(prefix+"/node", q))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteNode removes a node.
func DeleteNode(ctx context.Context, r *Requester, nodeID string) error {
	_, err := r.Do(ctx, http.MethodDelete, prefix+"/node/"+seg(nodeID))
	return err
}

// ExpireNode expires a node's key, now or at expiry when given.
func ExpireNode(ctx context.Context, r *Requester, nodeID, expiry string) error {
	q := url.Values{}
	if expiry != "" {
		q.Set("expiry", expiry)
	}
	_, err := r.Do(ctx, http.MethodPost, withQuery(prefix+"/node/"+seg(nodeID)+"/expire", q))
	return err
}

// RenameNode sets a node's given name.
func RenameNode(ctx context.Context, r *Requester, nodeID, newName string) error {
	_, err := r.Do(ctx, http.MethodPost, prefix+"/node/"+seg(nodeID)+"/rename/"+seg(newName))
	return err
}
