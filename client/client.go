// Package client is a typed SDK for the Headscale administrative API
// (/api/v1). Every method is one stateless round trip; batch deletes fan out
// independent requests and report how each one settled.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/sker65/headsup/client/config"
	"github.com/sker65/headsup/client/internal/api"
	"github.com/sker65/headsup/client/internal/batch"
)

// Resolver supplies the base URL and bearer credential. *config.Resolver
// implements it.
type Resolver = api.Resolver

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is safe for concurrent use. It holds no per-call state.
//
// Errors fall into three groups: *config.ConfigurationError before any
// network activity, *APIError for a non-2xx status, and transport errors as
// reported by the http.Client. A 2xx response whose body is not JSON is the
// exception: methods returning a typed response report it as a plain
// "decode response" error that belongs to none of the three groups.
type Client struct {
	http       *http.Client
	resolver   Resolver
	req        *api.Requester
	batchLimit int

	timeout time.Duration
	debug   bool
}

// New constructs a Client. Without WithResolver the default chain is used:
// runtime document, then environment, then build-time values. Configuration
// is resolved on every call, so New succeeds even when nothing is configured
// yet.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		http:       &http.Client{},
		resolver:   config.DefaultResolver(),
		batchLimit: batch.DefaultConcurrency,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}

	c.wrapTransport()
	c.req = &api.Requester{HTTP: c.http, Resolver: c.resolver}
	return c, nil
}

// wrapTransport installs the debug logger (optional) beneath the metrics
// recorder.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base}
	}
	c.http.Transport = &metricsTransport{base: base}
}

// Resolver returns the configuration chain used by c.
func (c *Client) Resolver() Resolver { return c.resolver }

// --------------------------------------------------------------------
// Health
// --------------------------------------------------------------------

// Health reports whether the server can reach its database.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	return api.Health(ctx, c.req)
}

// --------------------------------------------------------------------
// Users
// --------------------------------------------------------------------

// ListUsers returns users matching the non-empty fields of params.
func (c *Client) ListUsers(ctx context.Context, params ListUsersParams) (*ListUsersResponse, error) {
	return api.ListUsers(ctx, c.req, params)
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	return api.CreateUser(ctx, c.req, req)
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return api.DeleteUser(ctx, c.req, id)
}

// RenameUser renames the user identified by oldID.
func (c *Client) RenameUser(ctx context.Context, oldID, newName string) error {
	return api.RenameUser(ctx, c.req, oldID, newName)
}

// --------------------------------------------------------------------
// Nodes
// --------------------------------------------------------------------

// ListNodes returns nodes, optionally filtered by owner.
func (c *Client) ListNodes(ctx context.Context, params ListNodesParams) (*ListNodesResponse, error) {
	return api.ListNodes(ctx, c.req, params)
}

// DeleteNode removes a node.
func (c *Client) DeleteNode(ctx context.Context, nodeID string) error {
	return api.DeleteNode(ctx, c.req, nodeID)
}

// ExpireNode expires a node's key. expiry is an RFC 3339 timestamp; empty
// expires it now.
func (c *Client) ExpireNode(ctx context.Context, nodeID, expiry string) error {
	return api.ExpireNode(ctx, c.req, nodeID, expiry)
}

// RenameNode sets a node's given name.
func (c *Client) RenameNode(ctx context.Context, nodeID, newName string) error {
	return api.RenameNode(ctx, c.req, nodeID, newName)
}

// DeleteNodes deletes every node in ids concurrently and reports how many
// succeeded and failed. One failure never cancels the rest.
func (c *Client) DeleteNodes(ctx context.Context, ids []string) BatchResult {
	return batch.Settle(ctx, ids, c.batchLimit, c.DeleteNode)
}

// --------------------------------------------------------------------
// Pre-auth keys
// --------------------------------------------------------------------

// ListPreAuthKeys returns all pre-auth keys.
func (c *Client) ListPreAuthKeys(ctx context.Context) (*ListPreAuthKeysResponse, error) {
	return api.ListPreAuthKeys(ctx, c.req)
}

// CreatePreAuthKey creates a key. The secret is only ever present in this
// response; callers must not log or store it.
func (c *Client) CreatePreAuthKey(ctx context.Context, req CreatePreAuthKeyRequest) (*CreatePreAuthKeyResponse, error) {
	return api.CreatePreAuthKey(ctx, c.req, req)
}

// DeletePreAuthKey removes a key.
func (c *Client) DeletePreAuthKey(ctx context.Context, id string) error {
	return api.DeletePreAuthKey(ctx, c.req, id)
}

// ExpirePreAuthKey expires a key immediately.
func (c *Client) ExpirePreAuthKey(ctx context.Context, id string) error {
	return api.ExpirePreAuthKey(ctx, c.req, id)
}

// DeletePreAuthKeys deletes every key in ids concurrently.
func (c *Client) DeletePreAuthKeys(ctx context.Context, ids []string) BatchResult {
	return batch.Settle(ctx, ids, c.batchLimit, c.DeletePreAuthKey)
}

// --------------------------------------------------------------------
// API keys
// --------------------------------------------------------------------

// ListAPIKeys returns the non-secret records of all API keys.
func (c *Client) ListAPIKeys(ctx context.Context) (*ListAPIKeysResponse, error) {
	return api.ListAPIKeys(ctx, c.req)
}

// CreateAPIKey creates a key. The full secret is returned only here.
func (c *Client) CreateAPIKey(ctx context.Context, req CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	return api.CreateAPIKey(ctx, c.req, req)
}

// DeleteAPIKey removes the key with the given prefix. id is optional.
func (c *Client) DeleteAPIKey(ctx context.Context, prefix, id string) error {
	return api.DeleteAPIKey(ctx, c.req, prefix, id)
}

// ExpireAPIKey expires the key with the given prefix. id is optional.
func (c *Client) ExpireAPIKey(ctx context.Context, prefix, id string) error {
	return api.ExpireAPIKey(ctx, c.req, prefix, id)
}

// --------------------------------------------------------------------
// Policy
// --------------------------------------------------------------------

// GetPolicy fetches the policy document.
func (c *Client) GetPolicy(ctx context.Context) (*PolicyResponse, error) {
	return api.GetPolicy(ctx, c.req)
}

// SetPolicy replaces the policy document.
func (c *Client) SetPolicy(ctx context.Context, req SetPolicyRequest) (*PolicyResponse, error) {
	return api.SetPolicy(ctx, c.req, req)
}
