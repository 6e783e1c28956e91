package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/sker65/headsup/client"
	"github.com/sker65/headsup/client/config"
)

// newClient points a client at srv with a fixed credential.
func newClient(t *testing.T, srv *httptest.Server) *client.Client {
	t.Helper()
	c, err := client.New(
		client.WithHTTPClient(srv.Client()),
		client.WithResolver(config.NewResolver(config.MapSource{
			config.KeyBaseURL: srv.URL + "/",
			config.KeyAPIKey:  "mock-key",
		})),
	)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	return c
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	if got := r.Header.Get("Authorization"); got != "Bearer mock-key" {
		t.Errorf("Authorization = %q", got)
	}
}
