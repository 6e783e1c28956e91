package console

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sker65/headsup/client"
)

// ListUsers renders the users matching params.
func (a *App) ListUsers(ctx context.Context, params client.ListUsersParams) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.ListUsers(callCtx, params)
	cancel()
	logElapsed("list users", start, err)
	if err != nil {
		return a.fail(err, "Failed to load users")
	}
	var users []client.User
	if res != nil {
		users = res.Users
	}
	a.renderUsers(users)
	return nil
}

func (a *App) CreateUser(ctx context.Context, req client.CreateUserRequest) error {
	log.Debug().Str("name", req.Name).Str("email", req.Email).Msg("creating user")

	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.CreateUser(callCtx, req)
	cancel()
	logElapsed("create user", start, err)
	if err != nil {
		return a.fail(err, "Failed to create user")
	}
	a.Notifier.Success("User created")
	if res != nil && res.User != nil {
		a.renderUsers([]client.User{*res.User})
	}
	return nil
}

// DeleteUser asks for confirmation unless yes is set.
func (a *App) DeleteUser(ctx context.Context, id string, yes bool) error {
	ok, err := a.confirmed(yes, fmt.Sprintf("Delete user %s?", id))
	if err != nil || !ok {
		return err
	}
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err = a.API.DeleteUser(callCtx, id)
	cancel()
	logElapsed("delete user", start, err)
	if err != nil {
		return a.fail(err, "Failed to delete user")
	}
	a.Notifier.Success("User deleted")
	return nil
}

func (a *App) RenameUser(ctx context.Context, id, newName string) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err := a.API.RenameUser(callCtx, id, newName)
	cancel()
	logElapsed("rename user", start, err)
	if err != nil {
		return a.fail(err, "Failed to rename user")
	}
	a.Notifier.Success("User renamed")
	return nil
}
