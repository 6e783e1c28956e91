package console

import (
	"context"
	"fmt"
	"time"

	"github.com/sker65/headsup/client"
)

func (a *App) ListAPIKeys(ctx context.Context) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.ListAPIKeys(callCtx)
	cancel()
	logElapsed("list api keys", start, err)
	if err != nil {
		return a.fail(err, "Failed to load api keys")
	}
	var keys []client.APIKey
	if res != nil {
		keys = res.APIKeys
	}
	a.renderAPIKeys(keys)
	return nil
}

// CreateAPIKey creates a key and reveals the full secret once. expiration is
// optional.
func (a *App) CreateAPIKey(ctx context.Context, expiration time.Time, copyIt bool) error {
	var req client.CreateAPIKeyRequest
	if !expiration.IsZero() {
		req.Expiration = client.FormatTime(expiration)
	}

	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.CreateAPIKey(callCtx, req)
	cancel()
	logElapsed("create api key", start, err)
	if err != nil {
		return a.fail(err, "Failed to create api key")
	}

	if res == nil || res.APIKey == "" {
		a.Notifier.Warning("Key created, but secret was not returned by server")
	} else {
		a.revealSecret("API key created", "API key", res.APIKey, copyIt)
	}
	a.Notifier.Success("API key created")
	return a.ListAPIKeys(ctx)
}

// DeleteAPIKey deletes the key with prefix. id is optional.
func (a *App) DeleteAPIKey(ctx context.Context, prefix, id string, yes bool) error {
	ok, err := a.confirmed(yes, fmt.Sprintf("Delete API key %s?", prefix))
	if err != nil || !ok {
		return err
	}
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err = a.API.DeleteAPIKey(callCtx, prefix, id)
	cancel()
	logElapsed("delete api key", start, err)
	if err != nil {
		return a.fail(err, "Failed to delete api key")
	}
	a.Notifier.Success("API key deleted")
	return nil
}

func (a *App) ExpireAPIKey(ctx context.Context, prefix, id string) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err := a.API.ExpireAPIKey(callCtx, prefix, id)
	cancel()
	logElapsed("expire api key", start, err)
	if err != nil {
		return a.fail(err, "Failed to expire api key")
	}
	a.Notifier.Success("API key expired")
	return nil
}
