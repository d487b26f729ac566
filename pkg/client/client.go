// Package client is a typed Go SDK for the estate REST API. It wraps a plain
// http.Client with bearer-token injection, response-envelope unwrapping and
// error normalization, and exposes generic per-resource services on top.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the low-level HTTP wrapper shared by every resource service.
// All failures come back as *APIError; the client never retries.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore

	// OnUnauthorized runs after a 401 response has cleared the token store.
	// It fires at most once per request.
	OnUnauthorized func()
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithTokenStore replaces the default in-memory token store.
func WithTokenStore(store TokenStore) Option {
	return func(c *Client) { c.tokens = store }
}

// WithUnauthorizedHook registers a callback fired after a 401 clears the store.
func WithUnauthorizedHook(hook func()) Option {
	return func(c *Client) { c.OnUnauthorized = hook }
}

// NewClient creates a client for the API served at baseURL. The "/api" prefix
// is appended internally; pass the bare origin.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  NewMemoryTokenStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Tokens exposes the token store, mainly for the Session.
func (c *Client) Tokens() TokenStore {
	return c.tokens
}

// envelope mirrors the server's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// Get issues a GET and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post issues a POST with a JSON body and decodes the data into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	reader, contentType, err := jsonBody(body)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, path, reader, contentType, out)
}

// Put issues a PUT with a JSON body and decodes the data into out.
func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	reader, contentType, err := jsonBody(body)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPut, path, reader, contentType, out)
}

// PostForm issues a POST with a payload-encoded body (JSON or multipart).
func (c *Client) PostForm(ctx context.Context, path string, payload *Payload, out any) error {
	reader, contentType, err := payload.encode()
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, path, reader, contentType, out)
}

// PutForm issues a PUT with a payload-encoded body (JSON or multipart).
func (c *Client) PutForm(ctx context.Context, path string, payload *Payload, out any) error {
	reader, contentType, err := payload.encode()
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPut, path, reader, contentType, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}

// GetRaw fetches a non-envelope binary endpoint, such as a QR code image.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.failure(resp.StatusCode, raw)
	}

	return raw, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.failure(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: "malformed response body",
			Details: err.Error(),
		}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{
			Kind:    KindServer,
			Status:  resp.StatusCode,
			Message: "malformed response data",
			Details: err.Error(),
		}
	}

	return nil
}

func (c *Client) authorize(req *http.Request) {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// failure turns an error response into an *APIError, handling the 401 side
// effect of clearing the persisted token.
func (c *Client) failure(status int, raw []byte) error {
	apiErr := &APIError{
		Kind:    kindForStatus(status),
		Status:  status,
		Message: http.StatusText(status),
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Message != "" {
			apiErr.Message = env.Message
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}
	}

	if apiErr.Kind == KindUnauthorized {
		_ = c.tokens.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}

	return apiErr
}

func jsonBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, "", &APIError{Kind: KindNetwork, Message: "encode request body", Details: err.Error()}
	}

	return strings.NewReader(string(raw)), "application/json", nil
}
