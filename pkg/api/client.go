package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/andrescamacho/spacetraders-sdk/pkg/model"
)

// DefaultBaseURL is the public SpaceTraders v2 API
const DefaultBaseURL = "https://api.spacetraders.io/v2"

// Client performs authenticated JSON requests against the SpaceTraders API.
//
// A Client is immutable and safe for concurrent use. Handles derived with
// WithToken share the same *http.Client, and with it the connection pool.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client for the public API. An empty token sends no
// Authorization header.
func NewClient(token string) *Client {
	return NewClientWithConfig(DefaultBaseURL, token, nil)
}

// NewClientWithConfig creates a client with a custom base URL and HTTP client.
// If httpClient is nil a fresh client without timeout is used; callers impose
// deadlines through the context.
func NewClientWithConfig(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}

// WithToken returns a new handle carrying token and sharing the connection pool
func (c *Client) WithToken(token string) *Client {
	return &Client{
		httpClient: c.httpClient,
		baseURL:    c.baseURL,
		token:      token,
	}
}

// Token is the bearer token sent with every request; empty means none
func (c *Client) Token() string { return c.token }

// BaseURL is the API root every endpoint is joined to
func (c *Client) BaseURL() string { return c.baseURL }

// HTTPClient exposes the shared underlying client
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// Equal compares base URL and token; the connection pool is ignored
func (c *Client) Equal(other *Client) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.baseURL == other.baseURL && c.token == other.token
}

// Get issues a GET with optional query parameters. query is a struct tagged
// with `url:"name,omitempty"`; nil sends no query string.
func (c *Client) Get(ctx context.Context, endpoint string, query any, expectedStatus int, result any) error {
	return c.request(ctx, http.MethodGet, endpoint, query, nil, expectedStatus, result)
}

// Post issues a POST. A nil body sends no body and no Content-Type.
func (c *Client) Post(ctx context.Context, endpoint string, body any, expectedStatus int, result any) error {
	return c.request(ctx, http.MethodPost, endpoint, nil, body, expectedStatus, result)
}

// Patch issues a PATCH with the same envelope handling as Post
func (c *Client) Patch(ctx context.Context, endpoint string, body any, expectedStatus int, result any) error {
	return c.request(ctx, http.MethodPatch, endpoint, nil, body, expectedStatus, result)
}

func (c *Client) url(endpoint string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// request performs one round trip. The response status is checked before any
// decoding: only the expected status is decoded as a success payload.
func (c *Client) request(ctx context.Context, method, endpoint string, params any, body any, expectedStatus int, result any) error {
	reqURL := c.url(endpoint)

	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("failed to encode query: %w", err)
		}
		if encoded := values.Encode(); encoded != "" {
			reqURL += "?" + encoded
		}
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode != expectedStatus {
		return decodeErrorEnvelope(resp.StatusCode, respBody)
	}

	if result == nil {
		return nil
	}

	if err := model.Decode(respBody, result); err != nil {
		return &DecodeError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
	}

	return nil
}
