package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sker65/headsup/client/config"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// captured is one request as the fake server saw it.
type captured struct {
	Method     string
	RequestURI string
	Header     http.Header
	Body       string
}

// fakeServer records every request and answers with a fixed status and body.
type fakeServer struct {
	*httptest.Server
	mu   sync.Mutex
	reqs []captured
}

func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.reqs = append(fs.reqs, captured{Method: r.Method, RequestURI: r.RequestURI, Header: r.Header.Clone(), Body: string(b)})
		fs.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) requests() []captured {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]captured, len(fs.reqs))
	copy(out, fs.reqs)
	return out
}

// requester points a Requester at fs using a trailing-slash base URL to make
// sure joining never doubles the slash.
func (fs *fakeServer) requester() *Requester {
	return &Requester{
		HTTP:     fs.Client(),
		Resolver: config.NewResolver(config.MapSource{config.KeyBaseURL: fs.URL + "/", config.KeyAPIKey: "test-token"}),
	}
}
