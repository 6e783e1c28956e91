package console

import (
	"context"
	"strings"
	"time"

	"github.com/sker65/headsup/client"
)

// GetPolicy writes the policy document to Out unchanged, so it can be
// redirected to a file and fed back to SetPolicy.
func (a *App) GetPolicy(ctx context.Context) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.GetPolicy(callCtx)
	cancel()
	logElapsed("get policy", start, err)
	if err != nil {
		return a.fail(err, "Failed to load policy")
	}
	if res == nil {
		return nil
	}
	a.printf("%s", res.Policy)
	if res.Policy != "" && !strings.HasSuffix(res.Policy, "\n") {
		a.printf("\n")
	}
	if res.UpdatedAt != "" {
		a.Notifier.Info("Last updated " + RelativeTime(res.UpdatedAt, a.now()))
	}
	return nil
}

// SetPolicy replaces the policy document with text.
func (a *App) SetPolicy(ctx context.Context, text string) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	_, err := a.API.SetPolicy(callCtx, client.SetPolicyRequest{Policy: text})
	cancel()
	logElapsed("set policy", start, err)
	if err != nil {
		return a.fail(err, "Failed to save policy")
	}
	a.Notifier.Success("Policy saved")
	return nil
}
