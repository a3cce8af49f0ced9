package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/yndnr/todovault-go/internal/core/domain"
	"github.com/yndnr/todovault-go/internal/core/service"
	"github.com/yndnr/todovault-go/internal/telemetry/logger"
	"github.com/yndnr/todovault-go/internal/telemetry/metric"
)

// Handler is the main HTTP handler that routes API requests.
type Handler struct {
	authSvc *service.AuthService
	todoSvc *service.TodoService
	metrics *metric.Registry
	logger  logger.Logger
	mux     *http.ServeMux
}

// New creates a new Handler with the given services. metrics may be
// nil when the metrics endpoint is disabled.
func New(authSvc *service.AuthService, todoSvc *service.TodoService, metrics *metric.Registry, logger logger.Logger) *Handler {
	h := &Handler{
		authSvc: authSvc,
		todoSvc: todoSvc,
		metrics: metrics,
		logger:  logger,
		mux:     http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints (no auth required)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Auth endpoint
	h.mux.HandleFunc("POST /login", h.handleLogin)

	// Todo endpoints
	h.mux.HandleFunc("GET /items", h.handleListTodos)
	h.mux.HandleFunc("POST /items", h.handleCreateTodo)
	h.mux.HandleFunc("PUT /items/{id}", h.handleUpdateTodo)
	h.mux.HandleFunc("DELETE /items/{id}", h.handleDeleteTodo)
}

// writeJSON writes a JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response. The body carries only the
// client-safe message; the structured code travels in a header.
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		h.writeError(w, errorCodeToHTTPStatus(code), code, domain.GetErrorMessage(err))
		return
	}

	h.logger.Error("internal error", "error", err)
	h.writeError(w, http.StatusInternalServerError, "TV-SYS-5000", "internal server error")
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4000"), strings.HasSuffix(code, "-4001"), strings.HasSuffix(code, "-4002"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4010"), strings.HasSuffix(code, "-4011"):
		return http.StatusUnauthorized
	case strings.HasSuffix(code, "-4030"):
		return http.StatusForbidden
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ClientIP extracts the client IP from a request, preferring proxy
// headers over the connection address. It is shared with the
// middleware so throttling keys stay consistent across layers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// SplitHostPort keeps IPv6 addresses like [::1]:8080 intact.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
