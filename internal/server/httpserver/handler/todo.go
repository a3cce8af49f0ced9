package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yndnr/todovault-go/internal/core/domain"
	"github.com/yndnr/todovault-go/internal/core/service"
)

// handleListTodos returns the caller's todos in insertion order.
//
// GET /items
func (h *Handler) handleListTodos(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	if identity == nil {
		h.handleServiceError(w, domain.ErrTokenMissing)
		return
	}

	resp, err := h.todoSvc.ListTodos(r.Context(), &service.ListTodosRequest{OwnerID: identity.UserID})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp.Todos)
}

// handleCreateTodo appends a new todo for the caller.
//
// POST /items
func (h *Handler) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	if identity == nil {
		h.handleServiceError(w, domain.ErrTokenMissing)
		return
	}

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "TV-SYS-4000", "invalid request body")
		return
	}

	resp, err := h.todoSvc.CreateTodo(r.Context(), &service.CreateTodoRequest{
		OwnerID: identity.UserID,
		Text:    req.Text,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TodosCreated.Inc()
	}

	h.writeJSON(w, http.StatusCreated, resp.Todo)
}

// handleUpdateTodo applies a partial update to one of the caller's
// todos.
//
// PUT /items/{id}
func (h *Handler) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	if identity == nil {
		h.handleServiceError(w, domain.ErrTokenMissing)
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "TV-SYS-4000", "invalid request body")
		return
	}

	var completed *bool
	if len(req.Completed) > 0 {
		v := truthy(req.Completed)
		completed = &v
	}

	resp, err := h.todoSvc.UpdateTodo(r.Context(), &service.UpdateTodoRequest{
		OwnerID:   identity.UserID,
		ID:        id,
		Text:      req.Text,
		Completed: completed,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp.Todo)
}

// handleDeleteTodo removes one of the caller's todos and echoes the
// removed item.
//
// DELETE /items/{id}
func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFrom(r.Context())
	if identity == nil {
		h.handleServiceError(w, domain.ErrTokenMissing)
		return
	}

	id, err := parseID(r)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp, err := h.todoSvc.DeleteTodo(r.Context(), &service.DeleteTodoRequest{
		OwnerID: identity.UserID,
		ID:      id,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TodosDeleted.Inc()
	}

	h.writeJSON(w, http.StatusOK, DeleteTodoResponse{
		Success: true,
		Todo:    resp.Todo,
	})
}

// parseID reads the {id} path segment. A non-numeric id cannot name
// any stored todo, so it maps to the same not-found error.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrTodoNotFound
	}
	return id, nil
}

// truthy coerces a raw JSON value to a bool. false, 0, "" and null are
// false; any other value, including non-empty strings and objects, is
// true.
func truthy(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	case nil:
		return false
	default:
		return true
	}
}
