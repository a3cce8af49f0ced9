package handler

import (
	"encoding/json"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// LoginRequest is the request body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the response body of a successful login.
type LoginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

// CreateTodoRequest is the request body of POST /items.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest is the request body of PUT /items/{id}.
// Absent fields are left unchanged. completed accepts any JSON value;
// false, 0, "" and null count as false, everything else as true.
type UpdateTodoRequest struct {
	Text      *string         `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

// DeleteTodoResponse is the response body of DELETE /items/{id}. It
// echoes the removed item.
type DeleteTodoResponse struct {
	Success bool         `json:"success"`
	Todo    *domain.Todo `json:"todo"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response body of GET /health and GET /ready.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
