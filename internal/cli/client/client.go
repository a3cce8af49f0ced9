package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// Client talks to a todovault-server over its JSON API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a new API client. token may be empty for login-only use.
func New(server, token string) *Client {
	baseURL := server
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken replaces the bearer token for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// LoginResult holds the outcome of a login call.
type LoginResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTodos returns the caller's todos.
func (c *Client) ListTodos(ctx context.Context) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	if err := c.do(ctx, http.MethodGet, "/items", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo appends a new todo.
func (c *Client) CreateTodo(ctx context.Context, text string) (*domain.Todo, error) {
	var todo domain.Todo
	err := c.do(ctx, http.MethodPost, "/items", map[string]string{"text": text}, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateTodo applies a partial update. Nil fields are left unchanged.
func (c *Client) UpdateTodo(ctx context.Context, id int64, text *string, completed *bool) (*domain.Todo, error) {
	body := map[string]any{}
	if text != nil {
		body["text"] = *text
	}
	if completed != nil {
		body["completed"] = *completed
	}

	var todo domain.Todo
	err := c.do(ctx, http.MethodPut, "/items/"+strconv.FormatInt(id, 10), body, &todo)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes a todo and returns the removed item.
func (c *Client) DeleteTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	var resp struct {
		Todo *domain.Todo `json:"todo"`
	}
	err := c.do(ctx, http.MethodDelete, "/items/"+strconv.FormatInt(id, 10), nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Todo, nil
}

// Health checks server liveness.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// do sends one request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "todovault-cli/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Code:       resp.Header.Get("X-Error-Code"),
		}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
