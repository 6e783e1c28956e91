package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sker65/headsup/client"
	"github.com/sker65/headsup/internal/localstate"
	"github.com/sker65/headsup/internal/notify"
	"github.com/sker65/headsup/internal/theme"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// slowReader answers after delay, like an operator thinking it over.
type slowReader struct {
	delay  time.Duration
	answer string
	done   bool
}

func (r *slowReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	time.Sleep(r.delay)
	r.done = true
	return copy(p, r.answer), nil
}

// fakeAPI records calls and serves canned data. err, when set, fails every
// single-request call.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	err error

	health        *client.HealthResponse
	users         []client.User
	nodes         []client.Node
	preAuthKeys   []client.PreAuthKey
	apiKeys       []client.APIKey
	policy        *client.PolicyResponse
	createdKey    *client.CreatePreAuthKeyResponse
	createdAPIKey *client.CreateAPIKeyResponse

	deleteErrs map[string]error
	deleted    []string

	lastPreAuthReq client.CreatePreAuthKeyRequest
	lastAPIKeyReq  client.CreateAPIKeyRequest
	lastExpiry     string
	savedPolicy    string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Health(context.Context) (*client.HealthResponse, error) {
	f.record("Health")
	return f.health, f.err
}

func (f *fakeAPI) ListUsers(context.Context, client.ListUsersParams) (*client.ListUsersResponse, error) {
	f.record("ListUsers")
	if f.err != nil {
		return nil, f.err
	}
	return &client.ListUsersResponse{Users: f.users}, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, req client.CreateUserRequest) (*client.CreateUserResponse, error) {
	f.record("CreateUser")
	if f.err != nil {
		return nil, f.err
	}
	return &client.CreateUserResponse{User: &client.User{ID: "1", Name: req.Name}}, nil
}

func (f *fakeAPI) DeleteUser(context.Context, string) error {
	f.record("DeleteUser")
	return f.err
}

func (f *fakeAPI) RenameUser(context.Context, string, string) error {
	f.record("RenameUser")
	return f.err
}

func (f *fakeAPI) ListNodes(context.Context, client.ListNodesParams) (*client.ListNodesResponse, error) {
	f.record("ListNodes")
	if f.err != nil {
		return nil, f.err
	}
	return &client.ListNodesResponse{Nodes: f.nodes}, nil
}

func (f *fakeAPI) DeleteNode(ctx context.Context, id string) error {
	f.record("DeleteNode")
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deleteErrs[id]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeAPI) ExpireNode(_ context.Context, _ string, expiry string) error {
	f.record("ExpireNode")
	f.lastExpiry = expiry
	return f.err
}

func (f *fakeAPI) RenameNode(context.Context, string, string) error {
	f.record("RenameNode")
	return f.err
}

func (f *fakeAPI) settle(ctx context.Context, ids []string, del func(context.Context, string) error) client.BatchResult {
	res := client.BatchResult{Errors: map[string]error{}}
	for _, id := range ids {
		if err := del(ctx, id); err != nil {
			res.Failed = append(res.Failed, id)
			res.Errors[id] = err
			continue
		}
		res.Succeeded = append(res.Succeeded, id)
	}
	return res
}

func (f *fakeAPI) DeleteNodes(ctx context.Context, ids []string) client.BatchResult {
	return f.settle(ctx, ids, f.DeleteNode)
}

func (f *fakeAPI) ListPreAuthKeys(context.Context) (*client.ListPreAuthKeysResponse, error) {
	f.record("ListPreAuthKeys")
	if f.err != nil {
		return nil, f.err
	}
	return &client.ListPreAuthKeysResponse{PreAuthKeys: f.preAuthKeys}, nil
}

func (f *fakeAPI) CreatePreAuthKey(_ context.Context, req client.CreatePreAuthKeyRequest) (*client.CreatePreAuthKeyResponse, error) {
	f.record("CreatePreAuthKey")
	f.lastPreAuthReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.createdKey, nil
}

func (f *fakeAPI) DeletePreAuthKey(_ context.Context, id string) error {
	f.record("DeletePreAuthKey")
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deleteErrs[id]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeAPI) ExpirePreAuthKey(context.Context, string) error {
	f.record("ExpirePreAuthKey")
	return f.err
}

func (f *fakeAPI) DeletePreAuthKeys(ctx context.Context, ids []string) client.BatchResult {
	return f.settle(ctx, ids, f.DeletePreAuthKey)
}

func (f *fakeAPI) ListAPIKeys(context.Context) (*client.ListAPIKeysResponse, error) {
	f.record("ListAPIKeys")
	if f.err != nil {
		return nil, f.err
	}
	return &client.ListAPIKeysResponse{APIKeys: f.apiKeys}, nil
}

func (f *fakeAPI) CreateAPIKey(_ context.Context, req client.CreateAPIKeyRequest) (*client.CreateAPIKeyResponse, error) {
	f.record("CreateAPIKey")
	f.lastAPIKeyReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.createdAPIKey, nil
}

func (f *fakeAPI) DeleteAPIKey(context.Context, string, string) error {
	f.record("DeleteAPIKey")
	return f.err
}

func (f *fakeAPI) ExpireAPIKey(context.Context, string, string) error {
	f.record("ExpireAPIKey")
	return f.err
}

func (f *fakeAPI) GetPolicy(context.Context) (*client.PolicyResponse, error) {
	f.record("GetPolicy")
	return f.policy, f.err
}

func (f *fakeAPI) SetPolicy(_ context.Context, req client.SetPolicyRequest) (*client.PolicyResponse, error) {
	f.record("SetPolicy")
	f.savedPolicy = req.Policy
	if f.err != nil {
		return nil, f.err
	}
	return &client.PolicyResponse{Policy: req.Policy}, nil
}

type harness struct {
	app    *App
	api    *fakeAPI
	out    *bytes.Buffer
	errOut *bytes.Buffer
	copied []string
}

func newHarness(api *fakeAPI, input string) *harness {
	h := &harness{api: api, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	styles := theme.New(lipgloss.NewRenderer(h.out), localstate.ColorModeDark)
	h.app = &App{
		API:      api,
		Notifier: notify.New(h.errOut, styles),
		Theme:    styles,
		Out:      h.out,
		In:       strings.NewReader(input),
		Now:      func() time.Time { return testNow },
		Clipboard: func(s string) error {
			h.copied = append(h.copied, s)
			return nil
		},
	}
	return h
}

func (h *harness) levels() map[notify.Level][]string {
	out := map[notify.Level][]string{}
	for _, n := range h.app.Notifier.History() {
		out[n.Level] = append(out[n.Level], n.Message)
	}
	return out
}
