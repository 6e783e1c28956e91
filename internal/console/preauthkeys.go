package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sker65/headsup/client"
)

func (a *App) loadPreAuthKeys(ctx context.Context) ([]client.PreAuthKey, error) {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.ListPreAuthKeys(callCtx)
	cancel()
	logElapsed("list preauth keys", start, err)
	if err != nil {
		return nil, a.fail(err, "Failed to load preauth keys")
	}
	if res == nil {
		return nil, nil
	}
	return res.PreAuthKeys, nil
}

func (a *App) ListPreAuthKeys(ctx context.Context) error {
	keys, err := a.loadPreAuthKeys(ctx)
	if err != nil {
		return err
	}
	a.renderPreAuthKeys(keys)
	return nil
}

// NormalizeTags trims tags and drops empty ones. It returns nil when nothing
// is left so the field is omitted from the request.
func NormalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CreatePreAuthKey creates a key and reveals its secret once. A response
// without a secret is a warning, not an error.
func (a *App) CreatePreAuthKey(ctx context.Context, req client.CreatePreAuthKeyRequest, copyIt bool) error {
	req.ACLTags = NormalizeTags(req.ACLTags)
	log.Debug().
		Str("user", req.User).
		Strs("acl_tags", req.ACLTags).
		Str("expiration", req.Expiration).
		Msg("creating preauth key")

	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.CreatePreAuthKey(callCtx, req)
	cancel()
	logElapsed("create preauth key", start, err)
	if err != nil {
		return a.fail(err, "Failed to create preauth key")
	}

	var secret string
	if res != nil && res.PreAuthKey != nil {
		secret = res.PreAuthKey.Key
	}
	if secret == "" {
		a.Notifier.Warning("Key created, but secret was not returned by server")
	} else {
		a.revealSecret("Preauth key created", "Preauth key", secret, copyIt)
	}
	a.Notifier.Success("Preauth key created")
	return a.ListPreAuthKeys(ctx)
}

func (a *App) DeletePreAuthKey(ctx context.Context, id string, yes bool) error {
	ok, err := a.confirmed(yes, fmt.Sprintf("Delete preauth key %s?", id))
	if err != nil || !ok {
		return err
	}
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err = a.API.DeletePreAuthKey(callCtx, id)
	cancel()
	logElapsed("delete preauth key", start, err)
	if err != nil {
		return a.fail(err, "Failed to delete preauth key")
	}
	a.Notifier.Success("Preauth key deleted")
	return nil
}

func (a *App) ExpirePreAuthKey(ctx context.Context, id string) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	err := a.API.ExpirePreAuthKey(callCtx, id)
	cancel()
	logElapsed("expire preauth key", start, err)
	if err != nil {
		return a.fail(err, "Failed to expire preauth key")
	}
	a.Notifier.Success("Preauth key expired")
	return nil
}

// CleanupPreAuthKeys deletes used single-use keys, reports the tally and
// re-renders the key list.
func (a *App) CleanupPreAuthKeys(ctx context.Context, yes bool) error {
	keys, err := a.loadPreAuthKeys(ctx)
	if err != nil {
		return err
	}
	spent := client.SpentPreAuthKeys(keys)
	if len(spent) == 0 {
		a.Notifier.Info("No used single-use keys to delete")
		return nil
	}

	a.printf("Keys where Used = true and Reusable = false:\n")
	a.renderPreAuthKeys(spent)
	ok, err := a.confirmed(yes, fmt.Sprintf("Delete %d keys?", len(spent)))
	if err != nil || !ok {
		return err
	}

	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	result := a.API.DeletePreAuthKeys(callCtx, client.PreAuthKeyIDs(spent))
	cancel()
	logElapsed("cleanup preauth keys", start, nil)
	a.reportBatch("keys", result)

	return a.ListPreAuthKeys(ctx)
}
