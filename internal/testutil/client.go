// Package testutil provides a small HTTP client for exercising the API
// in handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Client wraps an httptest server with JSON request helpers.
type Client struct {
	t   *testing.T
	srv *httptest.Server
}

// NewClient creates a Client bound to srv. Failures are reported
// through t.
func NewClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return &Client{t: t, srv: srv}
}

// Get sends a GET request.
func (c *Client) Get(path string) *Response {
	return c.Do(http.MethodGet, path, nil)
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(path string, body any) *Response {
	return c.Do(http.MethodPost, path, body)
}

// Do sends a request with an optional JSON body.
func (c *Client) Do(method, path string, body any) *Response {
	return c.DoWithHeaders(method, path, body, nil)
}

// DoWithHeaders sends a request with extra headers.
func (c *Client) DoWithHeaders(method, path string, body any, headers map[string]string) *Response {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.srv.URL+path, reader)
	if err != nil {
		c.t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.srv.Client().Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("read response body: %v", err)
	}

	return &Response{t: c.t, Method: method, Path: path, StatusCode: resp.StatusCode, Body: data}
}

// Response holds a completed request for assertions.
type Response struct {
	t          *testing.T
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

// AssertStatus fails the test if the status code differs.
func (r *Response) AssertStatus(want int) *Response {
	r.t.Helper()
	if r.StatusCode != want {
		r.t.Fatalf("%s %s: expected status %d, got %d\nbody: %s", r.Method, r.Path, want, r.StatusCode, r.Body)
	}
	return r
}

// AssertBodyContains fails the test if the body lacks the substring.
func (r *Response) AssertBodyContains(substr string) *Response {
	r.t.Helper()
	if !strings.Contains(string(r.Body), substr) {
		r.t.Fatalf("%s %s: body does not contain %q\nbody: %s", r.Method, r.Path, substr, r.Body)
	}
	return r
}

// JSONMap decodes the body as a JSON object.
func (r *Response) JSONMap() map[string]any {
	r.t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		r.t.Fatalf("%s %s: decode body as object: %v\nbody: %s", r.Method, r.Path, err, r.Body)
	}
	return m
}

// JSONSlice decodes the body as a JSON array.
func (r *Response) JSONSlice() []any {
	r.t.Helper()
	var s []any
	if err := json.Unmarshal(r.Body, &s); err != nil {
		r.t.Fatalf("%s %s: decode body as array: %v\nbody: %s", r.Method, r.Path, err, r.Body)
	}
	return s
}
