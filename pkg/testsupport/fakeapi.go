package testsupport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RecordedCall captures one request received by FakeAPI.
type RecordedCall struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
	Header http.Header
}

// FakeAPI is an httptest-backed stand-in for the remote customer store.
// Responses are scripted per "METHOD /path" key; unscripted routes return 404.
type FakeAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	calls     []RecordedCall
	responses map[string]scripted
}

type scripted struct {
	status int
	body   string
}

// NewFakeAPI starts a server that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	api := &FakeAPI{responses: make(map[string]scripted)}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.Server.Close)
	return api
}

// BaseURL returns the root the client should be configured with.
func (a *FakeAPI) BaseURL() string {
	return a.Server.URL + "/api"
}

// Respond scripts the status and JSON body for a route such as
// "GET /public/customers".
func (a *FakeAPI) Respond(route string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[route] = scripted{status: status, body: body}
}

// Calls returns a copy of the recorded calls in arrival order.
func (a *FakeAPI) Calls() []RecordedCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]RecordedCall, len(a.calls))
	copy(out, a.calls)
	return out
}

// CallsTo filters the recorded calls by method.
func (a *FakeAPI) CallsTo(method string) []RecordedCall {
	var out []RecordedCall
	for _, call := range a.Calls() {
		if call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

func (a *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")
	call := RecordedCall{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
	}
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &call.Body)
		}
	}

	a.mu.Lock()
	a.calls = append(a.calls, call)
	resp, ok := a.responses[r.Method+" "+path]
	a.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}
