package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sker65/headsup/client/internal/types"
)

// ListUsers returns users, optionally filtered by id, name or email.
func ListUsers(ctx context.Context, r *Requester, params types.ListUsersParams) (*types.ListUsersResponse, error) {
	q := url.Values{}
	if params.ID != "" {
		q.Set("id", params.ID)
	}
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	if params.Email != "" {
		q.Set("email", params.Email)
	}
	res, err := Request[types.ListUsersResponse](ctx, r, http.MethodGet, withQuery(prefix+"/user", q))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateUser registers a new user.
func CreateUser(ctx context.Context, r *Requester, req types.CreateUserRequest) (*types.CreateUserResponse, error) {
	res, err := Request[types.CreateUserResponse](ctx, r, http.MethodPost, prefix+"/user", WithJSONBody(req))
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteUser removes a user by ID.
func DeleteUser(ctx context.Context, r *Requester, id string) error {
	_, err := r.Do(ctx, http.MethodDelete, prefix+"/user/"+seg(id))
	return err
}

// RenameUser gives the user identified by oldID a new name.
func RenameUser(ctx context.Context, r *Requester, oldID, newName string) error {
	_, err := r.Do(ctx, http.MethodPost, prefix+"/user/"+seg(oldID)+"/rename/"+seg(newName))
	return err
}
