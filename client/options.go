package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Transport wrappers (metrics, debug logging) are installed after all options
// have run, so option order does not matter.
type Option func(*Client) error

// WithResolver replaces the default configuration chain.
func WithResolver(r Resolver) Option {
	return func(c *Client) error {
		if r == nil {
			return fmt.Errorf("resolver must not be nil")
		}
		c.resolver = r
		return nil
	}
}

// WithHTTPClient uses a copy of hc for all requests. hc itself is not
// modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout bounds each request. Without it the client enforces no
// timeout of its own and relies on the transport and the caller's context.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging logs one line per request and response when enabled.
// Headers and bodies are never logged.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithBatchConcurrency caps in-flight requests for DeleteNodes and
// DeletePreAuthKeys.
func WithBatchConcurrency(n int) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("batch concurrency must be > 0")
		}
		c.batchLimit = n
		return nil
	}
}
