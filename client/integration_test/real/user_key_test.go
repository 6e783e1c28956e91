//go:build integration
// +build integration

package client_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	client "github.com/sker65/headsup/client"
)

// TestUserPreAuthKeyLifecycle covers create, rename, key issue, expire and
// delete against a live server.
func TestUserPreAuthKeyLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	c := newRealClient(t)

	name := fmt.Sprintf("it-%d", time.Now().UnixNano())
	created, err := c.CreateUser(ctx, client.CreateUserRequest{Name: name})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.User == nil || created.User.ID == "" {
		t.Fatal("CreateUser: empty user ID")
	}
	userID := created.User.ID
	defer func() { _ = c.DeleteUser(context.Background(), userID) }()

	if err := c.RenameUser(ctx, userID, name+"-renamed"); err != nil {
		t.Fatalf("RenameUser: %v", err)
	}
	users, err := c.ListUsers(ctx, client.ListUsersParams{Name: name + "-renamed"})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users.Users) != 1 {
		t.Fatalf("ListUsers: expected renamed user, got %+v", users.Users)
	}

	key, err := c.CreatePreAuthKey(ctx, client.CreatePreAuthKeyRequest{User: userID})
	if err != nil {
		t.Fatalf("CreatePreAuthKey: %v", err)
	}
	if key.PreAuthKey == nil || key.PreAuthKey.ID == "" {
		t.Fatalf("CreatePreAuthKey: %+v", key.PreAuthKey)
	}
	if err := c.ExpirePreAuthKey(ctx, key.PreAuthKey.ID); err != nil {
		t.Fatalf("ExpirePreAuthKey: %v", err)
	}
	if err := c.DeletePreAuthKey(ctx, key.PreAuthKey.ID); err != nil {
		t.Fatalf("DeletePreAuthKey: %v", err)
	}
}

func TestAPIKeyLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	c := newRealClient(t)

	exp := client.FormatTime(time.Now().Add(time.Hour))
	created, err := c.CreateAPIKey(ctx, client.CreateAPIKeyRequest{Expiration: exp})
	if err != nil {
		t.Fatalf("CreateAPIKey: %v", err)
	}
	if created.APIKey == "" {
		t.Fatal("CreateAPIKey: empty secret")
	}

	list, err := c.ListAPIKeys(ctx)
	if err != nil {
		t.Fatalf("ListAPIKeys: %v", err)
	}
	var prefix string
	for _, k := range list.APIKeys {
		if k.Prefix != "" && len(created.APIKey) > len(k.Prefix) && created.APIKey[:len(k.Prefix)] == k.Prefix {
			prefix = k.Prefix
		}
	}
	if prefix == "" {
		t.Fatal("created key not listed")
	}
	if err := c.ExpireAPIKey(ctx, prefix, ""); err != nil {
		t.Fatalf("ExpireAPIKey: %v", err)
	}
	if err := c.DeleteAPIKey(ctx, prefix, ""); err != nil {
		t.Fatalf("DeleteAPIKey: %v", err)
	}
}
