// Package jira is a minimal client for the Jira Cloud REST API v3, covering
// the worklog endpoint used to record time against issues.
package jira

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"jiralog/internal/log"
)

// Client talks to a single Jira Cloud site using basic auth (account email
// plus API token).
type Client struct {
	BaseURL string
	Client  *req.Client
}

// NewClient builds a client for https://<domain>. The domain is expected to
// be already normalized (no scheme, no trailing slash).
func NewClient(domain, email, apiToken string) *Client {
	return &Client{
		BaseURL: "https://" + strings.TrimRight(domain, "/"),
		Client:  createOptimizedClient().SetCommonBasicAuth(email, apiToken),
	}
}

// createOptimizedClient creates an HTTP client with optimal performance settings
func createOptimizedClient() *req.Client {
	client := req.C().
		SetUserAgent("jiralog").
		SetTLSClientConfig(&tls.Config{
			MinVersion: tls.VersionTLS12,
		}).
		SetTimeout(30 * time.Second). // Default timeout for most operations
		EnableKeepAlives()            // Enable connection keep-alive (auto-negotiates HTTP/2 for HTTPS)

	// Configure transport for optimal connection pooling
	transport := client.GetTransport()
	if transport != nil {
		transport.SetMaxIdleConns(100). // Increase connection pool
						SetIdleConnTimeout(90 * time.Second). // Keep connections alive longer
						SetMaxConnsPerHost(10)                // Max connections per host
	}

	return client
}

// requestExecutor is a function that executes an HTTP request
type requestExecutor func(*req.Request, string) (*req.Response, error)

// doRequest handles common HTTP request logic
func (c *Client) doRequest(method, path string, wantStatus int, data any, executor requestExecutor) error {
	if c == nil || c.Client == nil {
		return fmt.Errorf("jira client is not initialized")
	}

	// Build full URL efficiently
	var urlBuilder strings.Builder
	urlBuilder.Grow(len(c.BaseURL) + len(path))
	urlBuilder.WriteString(c.BaseURL)
	urlBuilder.WriteString(path)
	fullURL := urlBuilder.String()

	log.Debug("Making %s request to: %s", method, fullURL)

	// Execute the request
	resp, err := executor(c.Client.R(), fullURL)
	if err != nil {
		return fmt.Errorf("%s request failed for %s: %w", method, fullURL, err)
	}

	// Validate status code
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("request end with %d status, %s", resp.StatusCode, resp.String())
	}

	// Unmarshal response if data pointer provided
	if data != nil && len(resp.Bytes()) > 0 {
		if err := resp.UnmarshalJson(&data); err != nil {
			return fmt.Errorf("error unmarshal json: %w, %s", err, resp.String())
		}
	}

	log.Debug("%s request successful for: %s", method, fullURL)
	return nil
}

func (c *Client) post(path string, wantStatus int, json any, data any) error {
	return c.doRequest("POST", path, wantStatus, data, func(r *req.Request, url string) (*req.Response, error) {
		return r.SetBodyJsonMarshal(json).Post(url)
	})
}

// AddWorklog records time against the given issue and returns the created
// worklog. Jira answers 201 Created when the worklog is accepted; any other
// status is an error carrying the response body.
func (c *Client) AddWorklog(ticket string, worklog *Worklog) (*CreatedWorklog, error) {
	var created CreatedWorklog
	if err := c.post(fmt.Sprintf("/rest/api/3/issue/%s/worklog", ticket), 201, worklog, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
