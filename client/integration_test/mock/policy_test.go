package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/sker65/headsup/client"
)

func TestClient_PolicyRoundTrip(t *testing.T) {
	t.Parallel()

	stored := `{"acls":[]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/policy" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"policy":"{\"acls\":[]}","updatedAt":"2025-06-01T10:00:00Z"}`))
		case http.MethodPut:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"parsing policy: unexpected token"}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	c := newClient(t, srv)
	ctx := context.Background()

	p, err := c.GetPolicy(ctx)
	if err != nil {
		t.Fatalf("GetPolicy: %v", err)
	}
	if p.Policy != stored || p.UpdatedAt == "" {
		t.Fatalf("unexpected policy %+v", p)
	}

	_, err = c.SetPolicy(ctx, client.SetPolicyRequest{Policy: "{"})
	apiErr, ok := client.AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "parsing policy: unexpected token" || apiErr.Recoverable() {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"databaseConnectivity":true}`))
	}))
	defer srv.Close()

	res, err := newClient(t, srv).Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if res.DatabaseConnectivity == nil || !*res.DatabaseConnectivity {
		t.Fatalf("unexpected health %+v", res)
	}
}
