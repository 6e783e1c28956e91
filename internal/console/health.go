package console

import (
	"context"
	"time"
)

// Health prints the server's database connectivity. An absent flag counts
// as failed.
func (a *App) Health(ctx context.Context) error {
	start := time.Now()
	callCtx, cancel := a.bound(ctx)
	res, err := a.API.Health(callCtx)
	cancel()
	logElapsed("health", start, err)
	if err != nil {
		return a.fail(err, "Health check failed")
	}

	status := a.Theme.Error.Render("Failed")
	if res != nil && res.DatabaseConnectivity != nil && *res.DatabaseConnectivity {
		status = a.Theme.Success.Render("OK")
	}
	a.printf("Database connectivity: %s\n", status)
	return nil
}
