package testutil

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/letybo/ordering/internal/httpclient"
)

var _ httpclient.Client = (*MockHTTPClient)(nil)

// MockHTTPClient answers requests from registered responses matched on the
// URL suffix. Unmatched requests get a 404.
type MockHTTPClient struct {
	mu       sync.RWMutex
	routes   map[string]MockResponse
	requests []*httpclient.Request
}

// MockResponse represents a mock HTTP response
type MockResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		routes: make(map[string]MockResponse),
	}
}

// RegisterResponse registers a mock response for a given URL suffix
func (m *MockHTTPClient) RegisterResponse(url string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[url] = resp
}

// RegisterJSONResponse is a helper to register a 200 JSON body
func (m *MockHTTPClient) RegisterJSONResponse(url, body string) {
	m.RegisterResponse(url, MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
}

// Send implements the httpclient.Client interface. Error statuses are
// returned as httpclient errors like the real client does.
func (m *MockHTTPClient) Send(_ context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	resp := MockResponse{StatusCode: http.StatusNotFound, Body: []byte("Not Found")}
	for route, r := range m.routes {
		if strings.HasSuffix(req.URL, route) {
			resp = r
			break
		}
	}

	out := &httpclient.Response{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
	}
	if out.Headers == nil {
		out.Headers = map[string]string{}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return out, httpclient.NewError(resp.StatusCode, resp.Body)
	}
	return out, nil
}

// Requests returns the requests sent so far, oldest first
func (m *MockHTTPClient) Requests() []*httpclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*httpclient.Request(nil), m.requests...)
}

// Clear removes all registered responses and recorded requests
func (m *MockHTTPClient) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes = make(map[string]MockResponse)
	m.requests = nil
}
