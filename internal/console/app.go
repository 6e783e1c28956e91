// Package console implements the headsup admin commands on top of the client
// SDK: it loads data, renders it, asks for confirmation and reports outcomes
// through notifications.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"github.com/sker65/headsup/client"
	"github.com/sker65/headsup/internal/notify"
	"github.com/sker65/headsup/internal/theme"
)

// API is the subset of *client.Client the console drives.
type API interface {
	Health(ctx context.Context) (*client.HealthResponse, error)

	ListUsers(ctx context.Context, params client.ListUsersParams) (*client.ListUsersResponse, error)
	CreateUser(ctx context.Context, req client.CreateUserRequest) (*client.CreateUserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	RenameUser(ctx context.Context, oldID, newName string) error

	ListNodes(ctx context.Context, params client.ListNodesParams) (*client.ListNodesResponse, error)
	DeleteNode(ctx context.Context, nodeID string) error
	ExpireNode(ctx context.Context, nodeID, expiry string) error
	RenameNode(ctx context.Context, nodeID, newName string) error
	DeleteNodes(ctx context.Context, ids []string) client.BatchResult

	ListPreAuthKeys(ctx context.Context) (*client.ListPreAuthKeysResponse, error)
	CreatePreAuthKey(ctx context.Context, req client.CreatePreAuthKeyRequest) (*client.CreatePreAuthKeyResponse, error)
	DeletePreAuthKey(ctx context.Context, id string) error
	ExpirePreAuthKey(ctx context.Context, id string) error
	DeletePreAuthKeys(ctx context.Context, ids []string) client.BatchResult

	ListAPIKeys(ctx context.Context) (*client.ListAPIKeysResponse, error)
	CreateAPIKey(ctx context.Context, req client.CreateAPIKeyRequest) (*client.CreateAPIKeyResponse, error)
	DeleteAPIKey(ctx context.Context, prefix, id string) error
	ExpireAPIKey(ctx context.Context, prefix, id string) error

	GetPolicy(ctx context.Context) (*client.PolicyResponse, error)
	SetPolicy(ctx context.Context, req client.SetPolicyRequest) (*client.PolicyResponse, error)
}

var _ API = (*client.Client)(nil)

// App carries every collaborator a command needs. It is built once per
// process and passed down explicitly.
type App struct {
	API      API
	Notifier *notify.Notifier
	Theme    theme.Styles
	Out      io.Writer
	In       io.Reader

	// Timeout bounds each round trip. Zero leaves ctx as is.
	Timeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// bound derives the context for one request phase. Prompts run outside it,
// so time spent waiting on the operator does not count against Timeout.
func (a *App) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.Timeout)
}

func (a *App) copyToClipboard(s string) error {
	if a.Clipboard != nil {
		return a.Clipboard(s)
	}
	return clipboard.WriteAll(s)
}

// reportedError marks an error that has already been shown to the operator.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown as an error notification.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// fail shows err as an error notification and returns it marked as reported.
// fallback is used when err carries no message.
func (a *App) fail(err error, fallback string) error {
	msg := err.Error()
	if strings.TrimSpace(msg) == "" {
		msg = fallback
	}
	a.Notifier.Error(msg)
	if apiErr, ok := client.AsAPIError(err); ok && apiErr.Recoverable() {
		a.Notifier.Info("The server reported a temporary failure; the request may succeed if retried.")
	}
	return &reportedError{err: err}
}

// Confirm asks a yes/no question on Out and reads the answer from In.
// Anything other than y or yes is a no.
func (a *App) Confirm(question string) (bool, error) {
	if a.In == nil {
		return false, errors.New("confirmation required: rerun with --yes")
	}
	_, _ = fmt.Fprintf(a.Out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(a.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// confirmed returns true when yes is set or the operator agrees.
func (a *App) confirmed(yes bool, question string) (bool, error) {
	if yes {
		return true, nil
	}
	ok, err := a.Confirm(question)
	if err != nil {
		return false, err
	}
	if !ok {
		a.Notifier.Info("Cancelled")
	}
	return ok, nil
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.Out, format, args...)
}

func logElapsed(op string, start time.Time, err error) {
	ev := log.Debug().Str("op", op)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Dur("elapsed", time.Since(start)).Msg("request completed")
}
