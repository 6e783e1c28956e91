package client

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// debugTransport logs one line per request and one per response.
//
// Set HEADSUP_DEBUG=true (or DEBUG=true) to enable it without code changes.
// Only method, URL, request id, status and timing are logged: bodies may hold
// once-only secrets and the Authorization header holds the credential.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqID := req.Header.Get("X-Request-Id")
	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_id", reqID).Msg("HTTP request")

	start := time.Now()
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Str("request_id", reqID).Msg("HTTP request failed")
		return nil, err
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", reqID).
		Int("status_code", resp.StatusCode).
		Int64("content_length", resp.ContentLength).
		Dur("elapsed", time.Since(start)).
		Msg("HTTP response")
	return resp, nil
}

// debugLoggingRequested reports whether HEADSUP_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("HEADSUP_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
