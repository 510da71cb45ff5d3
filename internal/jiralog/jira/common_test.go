package jira

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imroc/req/v3"
)

// mockServer creates a test HTTP server that simulates the Jira Cloud API.
// This is shared across all test files in the jira package.
func mockServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	return httptest.NewServer(mux)
}

// testClient points a Client at the mock server instead of a real site.
func testClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL: srv.URL,
		Client:  req.C().SetCommonBasicAuth("dev@example.com", "api-token"),
	}
}
