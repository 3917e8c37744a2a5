package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pali/pali-terminal/internal/config"
	"github.com/pali/pali-terminal/internal/logging"
)

const (
	// APIKeyHeader carries the key on every authenticated request.
	APIKeyHeader = "X-API-Key"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second
)

// Client is an HTTP client for the Pali todo server.
type Client struct {
	// BaseURL is the server base URL (e.g., "http://localhost:8787")
	BaseURL string

	// APIKey authenticates requests; empty sends no auth header
	APIKey string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// envelope is the response wrapper every Pali endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// NewClient creates a client from the user's configuration.
func NewClient(cfg *config.Config) *Client {
	return NewClientWithURL(cfg.Endpoint, cfg.APIKey)
}

// NewClientWithURL creates a client for an explicit base URL and key.
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

func (c *Client) buildURL(path string) string {
	return c.BaseURL + path
}

// do performs a request and returns the response. body (if non-nil) is
// JSON-encoded; query (if non-nil) is appended to the URL.
func (c *Client) do(method, path string, query url.Values, body any, auth bool) (*http.Response, error) {
	u := c.buildURL(path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, newParseError("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return nil, newNetworkError("failed to create request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.APIKey != "" {
		req.Header.Set(APIKeyHeader, c.APIKey)
	}

	logging.LogRequest(method, u, body != nil)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, newNetworkError("server unreachable", err)
	}

	logging.LogResponse(method, u, resp.StatusCode, time.Since(start))
	return resp, nil
}

// decode reads a response, unwraps the {success, data, error} envelope,
// and unmarshals data into out. Pass nil to discard the data payload.
func decode(resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError("failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		// Error bodies often still use the envelope.
		var env envelope
		if jerr := json.Unmarshal(raw, &env); jerr == nil && env.Error != "" {
			msg = env.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return newStatusError(resp.StatusCode, msg)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return newParseError("failed to parse server response", err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "server returned an error without details"
		}
		return newStatusError(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}

	if env.Data == nil {
		return newParseError("server returned success but no data", nil)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return newParseError("failed to parse response data", err)
	}

	return nil
}

// CreateTodo creates a new todo item.
func (c *Client) CreateTodo(req CreateTodoRequest) (*Todo, error) {
	resp, err := c.do(http.MethodPost, "/todos", nil, req, true)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decode(resp, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListTodos lists todos, optionally filtered by tag and priority word.
// Empty strings mean no filter. Order is the server's insertion order.
func (c *Client) ListTodos(tag, priority string) ([]Todo, error) {
	query := url.Values{}
	if tag != "" {
		query.Set("tag", tag)
	}
	if priority != "" {
		query.Set("priority", priority)
	}

	resp, err := c.do(http.MethodGet, "/todos", query, nil, true)
	if err != nil {
		return nil, err
	}

	var todos []Todo
	if err := decode(resp, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTodo retrieves a single todo by its full ID.
func (c *Client) GetTodo(id string) (*Todo, error) {
	resp, err := c.do(http.MethodGet, "/todos/"+url.PathEscape(id), nil, nil, true)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decode(resp, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo updates a todo. Nil fields in req are left unchanged.
func (c *Client) UpdateTodo(id string, req UpdateTodoRequest) (*Todo, error) {
	resp, err := c.do(http.MethodPut, "/todos/"+url.PathEscape(id), nil, req, true)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decode(resp, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo deletes a todo by its full ID.
func (c *Client) DeleteTodo(id string) error {
	resp, err := c.do(http.MethodDelete, "/todos/"+url.PathEscape(id), nil, nil, true)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// ToggleTodo flips the completion flag of a todo and returns the updated
// record.
func (c *Client) ToggleTodo(id string) (*Todo, error) {
	resp, err := c.do(http.MethodPatch, "/todos/"+url.PathEscape(id)+"/toggle", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decode(resp, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// SearchTodos searches todo titles and descriptions server-side.
func (c *Client) SearchTodos(query string) ([]Todo, error) {
	q := url.Values{}
	q.Set("q", query)

	resp, err := c.do(http.MethodGet, "/todos/search", q, nil, true)
	if err != nil {
		return nil, err
	}

	var todos []Todo
	if err := decode(resp, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// ResolveIDPrefix asks the server to expand an ID prefix to a full ID.
// Servers without the resolve endpoint return not-found; callers fall
// back to client-side resolution (see ResolvePartialID).
func (c *Client) ResolveIDPrefix(prefix string) (string, error) {
	resp, err := c.do(http.MethodGet, "/todos/resolve/"+url.PathEscape(prefix), nil, nil, true)
	if err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	return result.ID, nil
}

// Initialize performs first-time server setup and returns the initial
// admin key. No auth header is sent; the endpoint only works once.
func (c *Client) Initialize() (string, error) {
	resp, err := c.do(http.MethodPost, "/initialize", nil, nil, false)
	if err != nil {
		return "", err
	}

	var result struct {
		AdminKey string `json:"admin_key"`
	}
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	return result.AdminKey, nil
}

// Reinitialize deactivates ALL admin keys and returns a fresh one.
// Emergency use only.
func (c *Client) Reinitialize() (string, error) {
	resp, err := c.do(http.MethodPost, "/reinitialize", nil, nil, true)
	if err != nil {
		return "", err
	}

	var result struct {
		AdminKey string `json:"admin_key"`
	}
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	return result.AdminKey, nil
}

// RotateAdminKey rotates the admin API key and returns the new value.
func (c *Client) RotateAdminKey() (string, error) {
	resp, err := c.do(http.MethodPost, "/admin/keys/rotate", nil, nil, true)
	if err != nil {
		return "", err
	}

	var result struct {
		NewKey string `json:"new_key"`
	}
	if err := decode(resp, &result); err != nil {
		return "", err
	}
	return result.NewKey, nil
}

// GenerateAPIKey creates a new API key with an optional name.
func (c *Client) GenerateAPIKey(name string) (*GeneratedKey, error) {
	var body any
	if name != "" {
		body = map[string]string{"name": name}
	}

	resp, err := c.do(http.MethodPost, "/admin/keys/generate", nil, body, true)
	if err != nil {
		return nil, err
	}

	var key GeneratedKey
	if err := decode(resp, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// ListAPIKeys lists all API keys (admin only).
func (c *Client) ListAPIKeys() ([]APIKeyInfo, error) {
	resp, err := c.do(http.MethodGet, "/admin/keys", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var keys []APIKeyInfo
	if err := decode(resp, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// RevokeAPIKey revokes an API key by ID (admin only).
func (c *Client) RevokeAPIKey(id string) error {
	resp, err := c.do(http.MethodDelete, "/admin/keys/"+url.PathEscape(id), nil, nil, true)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// Ping checks that the server is reachable.
func (c *Client) Ping() error {
	resp, err := c.do(http.MethodGet, "/", nil, nil, false)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return newStatusError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}
	return nil
}
