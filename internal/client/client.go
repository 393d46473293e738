// Package client is a typed client for the portfolio REST API. It keeps the
// login cookie in a jar so one Client behaves like one browser.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request when no HTTP client is supplied.
const DefaultTimeout = 30 * time.Second

// Client talks to the /api surface of the server.
type Client struct {
	baseURL string
	http    *http.Client
}

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	hasTimeout bool
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient bases the client on a copy of hc. The copy gets its own
// cookie jar when hc has none; hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout, whatever the option order.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
		o.hasTimeout = true
	}
}

// New creates a client for baseURL, for example "http://localhost:4000/api".
func New(baseURL string, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hc := &http.Client{Timeout: DefaultTimeout}
	if o.httpClient != nil {
		copied := *o.httpClient
		hc = &copied
	}
	if o.hasTimeout {
		hc.Timeout = o.timeout
	}
	if hc.Jar == nil {
		jar, _ := cookiejar.New(nil)
		hc.Jar = jar
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends body as JSON and decodes a 2xx answer into out when out is not
// nil. Non-2xx answers become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s: %w", method, path, err)
	}
	return nil
}
