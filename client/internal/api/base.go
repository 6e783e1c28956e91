package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/sker65/headsup/client/internal/errors"
)

// prefix is prepended to every endpoint path.
const prefix = "/api/v1"

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Resolver supplies the base URL and credential at call time.
type Resolver interface {
	ResolveBaseURL() (string, error)
	ResolveCredential() (string, error)
}

// Requester is the single place that talks HTTP. It is stateless apart from
// its two collaborators, so it is safe for concurrent use.
type Requester struct {
	HTTP     HTTPClient
	Resolver Resolver
}

// RequestOption adjusts one request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	body    any
	hasBody bool
	header  http.Header
}

// WithJSONBody serializes v as the request body.
func WithJSONBody(v any) RequestOption {
	return func(o *requestOptions) {
		o.body = v
		o.hasBody = true
	}
}

// WithHeader adds a caller header. Caller headers are applied after the
// defaults (Content-Type, Authorization, X-Request-Id), so the last writer
// wins. An empty value is ignored and never unsets a default.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if value == "" {
			return
		}
		if o.header == nil {
			o.header = make(http.Header)
		}
		o.header.Set(key, value)
	}
}

// JoinURL concatenates base and path with exactly one slash between them.
// base is expected to carry no trailing slash (the resolver strips it).
func JoinURL(base, path string) string {
	return base + "/" + strings.TrimPrefix(path, "/")
}

// withQuery appends q to path, or returns path untouched when q is empty.
func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// seg percent-encodes one caller-supplied path segment.
func seg(s string) string {
	return url.PathEscape(s)
}

// Do sends one request and returns the raw body of a 2xx response.
//
// A non-2xx status yields *errors.APIError. Configuration problems are
// returned before any network activity. Transport failures are returned
// exactly as the HTTPClient reported them.
func (r *Requester) Do(ctx context.Context, method, path string, opts ...RequestOption) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	base, err := r.Resolver.ResolveBaseURL()
	if err != nil {
		return nil, err
	}
	cred, err := r.Resolver.ResolveCredential()
	if err != nil {
		return nil, err
	}

	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	var body io.Reader
	if o.hasBody {
		b, err := json.Marshal(o.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, JoinURL(base, path), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+cred)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())
	for k, vs := range o.header {
		httpReq.Header[k] = vs
	}

	resp, err := r.HTTP.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierrors.NewAPIError(resp.StatusCode, ParseBody(raw))
	}
	return raw, nil
}

// Request is Do followed by decoding into T.
//
// An empty body yields the zero T. A body that is not JSON is handed back as
// text when T is string or any; for any other T it is a decode error.
func Request[T any](ctx context.Context, r *Requester, method, path string, opts ...RequestOption) (T, error) {
	var out T
	raw, err := r.Do(ctx, method, path, opts...)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, nil
	}
	if json.Valid(raw) {
		if err := json.Unmarshal(raw, &out); err != nil {
			return out, fmt.Errorf("decode response: %w", err)
		}
		return out, nil
	}
	switch p := any(&out).(type) {
	case *string:
		*p = string(raw)
	case *any:
		*p = string(raw)
	default:
		return out, fmt.Errorf("decode response: body is not JSON")
	}
	return out, nil
}

// ParseBody reads a payload tolerantly: nil when empty, the decoded JSON
// value when valid, the raw text otherwise.
func ParseBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
