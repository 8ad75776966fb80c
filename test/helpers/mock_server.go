package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

// RecordedRequest is a request as seen by the MockServer
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// MockServer is a fake SpaceTraders API. Routes are registered with On and
// matched by method and path; each route may also assert the query string,
// the bearer token and the JSON body of the request.
type MockServer struct {
	t      testing.TB
	server *httptest.Server

	mu       sync.Mutex
	routes   []*MockRoute
	requests []RecordedRequest
	failures []string
}

// NewMockServer starts a server that is closed when the test ends. t may be
// nil (godog scenarios); failures are then only collected, see Failures.
func NewMockServer(t testing.TB) *MockServer {
	m := &MockServer{t: t}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	if t != nil {
		t.Cleanup(m.server.Close)
	}
	return m
}

func (m *MockServer) URL() string { return m.server.URL }

// Client returns an *http.Client wired to the server
func (m *MockServer) Client() *http.Client { return m.server.Client() }

func (m *MockServer) Close() { m.server.Close() }

// On registers a route for method and path (e.g. "/my/agent")
func (m *MockServer) On(method, path string) *MockRoute {
	m.mu.Lock()
	defer m.mu.Unlock()

	route := &MockRoute{method: method, path: path, status: http.StatusOK, response: []byte(`{}`)}
	m.routes = append(m.routes, route)
	return route
}

// Requests returns every request received so far
func (m *MockServer) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RecordedRequest(nil), m.requests...)
}

// Failures returns every expectation the server saw violated
func (m *MockServer) Failures() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.failures...)
}

func (m *MockServer) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	m.failures = append(m.failures, msg)
	if m.t != nil {
		m.t.Errorf("mock server: %s", msg)
	}
}

func (m *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})

	var route *MockRoute
	for _, candidate := range m.routes {
		if candidate.method == r.Method && candidate.path == r.URL.Path {
			route = candidate
			break
		}
	}
	if route == nil {
		m.fail("unexpected request %s %s", r.Method, r.URL.RequestURI())
		m.mu.Unlock()
		writeJSON(w, http.StatusInternalServerError, ErrorEnvelope(3000, "no route for "+r.URL.Path))
		return
	}

	route.hits.Add(1)
	for _, problem := range route.check(r, body) {
		m.fail("%s %s: %s", r.Method, r.URL.Path, problem)
	}
	status, response := route.status, route.response
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// MockRoute is one canned endpoint
type MockRoute struct {
	method string
	path   string

	query       url.Values
	checkQuery  bool
	token       string
	checkToken  bool
	forbidToken bool
	body        any
	checkBody   bool

	status   int
	response []byte
	hits     atomic.Int64
}

// WithQuery asserts the exact query string; keys not listed must be absent
func (r *MockRoute) WithQuery(values url.Values) *MockRoute {
	r.query = values
	r.checkQuery = true
	return r
}

// WithToken asserts the request carries "Authorization: Bearer <token>"
func (r *MockRoute) WithToken(token string) *MockRoute {
	r.token = token
	r.checkToken = true
	return r
}

// WithoutToken asserts the request carries no Authorization header at all
func (r *MockRoute) WithoutToken() *MockRoute {
	r.forbidToken = true
	return r
}

// WithJSONBody asserts the request body is JSON equal to v
func (r *MockRoute) WithJSONBody(v any) *MockRoute {
	r.body = v
	r.checkBody = true
	return r
}

// Respond sets the status and JSON-encodes v as the response body
func (r *MockRoute) Respond(status int, v any) *MockRoute {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("mock server: cannot encode response: %v", err))
	}
	return r.RespondRaw(status, data)
}

// RespondRaw sets the status and the literal response body
func (r *MockRoute) RespondRaw(status int, body []byte) *MockRoute {
	r.status = status
	r.response = body
	return r
}

// RespondError answers with a server error envelope
func (r *MockRoute) RespondError(status, code int, message string) *MockRoute {
	return r.Respond(status, ErrorEnvelope(code, message))
}

// Hits is the number of requests routed here
func (r *MockRoute) Hits() int { return int(r.hits.Load()) }

func (r *MockRoute) check(req *http.Request, body []byte) []string {
	var problems []string

	if accept := req.Header.Get("Accept"); accept != "application/json" {
		problems = append(problems, fmt.Sprintf("Accept header is %q", accept))
	}

	auth, hasAuth := req.Header["Authorization"]
	if r.forbidToken && hasAuth {
		problems = append(problems, fmt.Sprintf("Authorization header present: %q", strings.Join(auth, ",")))
	}
	if r.checkToken && req.Header.Get("Authorization") != "Bearer "+r.token {
		problems = append(problems, fmt.Sprintf("Authorization is %q, want bearer %q", req.Header.Get("Authorization"), r.token))
	}

	if r.checkQuery && req.URL.Query().Encode() != r.query.Encode() {
		problems = append(problems, fmt.Sprintf("query is %q, want %q", req.URL.RawQuery, r.query.Encode()))
	}

	if r.checkBody {
		if req.Header.Get("Content-Type") != "application/json" {
			problems = append(problems, fmt.Sprintf("Content-Type is %q", req.Header.Get("Content-Type")))
		}
		if !jsonEqual(body, r.body) {
			problems = append(problems, fmt.Sprintf("body is %s", body))
		}
	}

	return problems
}

// ErrorEnvelope builds a server error envelope with a fresh request id
func ErrorEnvelope(code int, message string) map[string]any {
	return map[string]any{
		"error": map[string]any{
			"code":      code,
			"message":   message,
			"requestId": uuid.NewString(),
		},
	}
}

func jsonEqual(actual []byte, expected any) bool {
	want, err := json.Marshal(expected)
	if err != nil {
		return false
	}
	var a, b any
	if json.Unmarshal(actual, &a) != nil || json.Unmarshal(want, &b) != nil {
		return false
	}
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	return bytes.Equal(aj, bj)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
