// Package httpserver provides the HTTP/HTTPS server for TodoVault.
package httpserver

import (
	"net/http"

	"github.com/yndnr/todovault-go/internal/core/service"
	"github.com/yndnr/todovault-go/internal/server/httpserver/handler"
	"github.com/yndnr/todovault-go/internal/telemetry/logger"
	"github.com/yndnr/todovault-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// AuthService handles login and token verification.
	AuthService *service.AuthService

	// TodoService handles todo operations.
	TodoService *service.TodoService

	// Metrics is the Prometheus registry. Nil disables /metrics and
	// request instrumentation.
	Metrics *metric.Registry

	// Static serves the frontend for paths outside the API. Nil
	// disables the static fallback.
	Static http.Handler

	// Logger for request logging.
	Logger logger.Logger

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// GlobalRateLimit is the global rate limit per IP (requests/second).
	GlobalRateLimit int

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		GlobalRateLimit: 100,
		EnableAudit:     true,
	}
}

// NewRouter creates and configures the HTTP router with all routes
// and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	h := handler.New(cfg.AuthService, cfg.TodoService, cfg.Metrics, log)

	// Shared outer middleware, outermost first.
	outer := []Middleware{
		Recover(log),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}
	if cfg.GlobalRateLimit > 0 {
		outer = append(outer, RateLimit(cfg.GlobalRateLimit))
	}
	if cfg.Metrics != nil {
		outer = append(outer, Metrics(cfg.Metrics))
	}
	if cfg.EnableAudit {
		outer = append(outer, Audit(log))
	}

	publicChain := outer
	authChain := append(append([]Middleware{}, outer...), Auth(cfg.AuthService))

	mux := http.NewServeMux()

	// Health endpoints stay outside the heavy chain.
	light := []Middleware{Recover(log), RequestID()}
	mux.Handle("GET /health", Chain(h, light...))
	mux.Handle("GET /ready", Chain(h, light...))

	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), light...))
	}

	// Auth endpoint is public; everything under /items needs a token.
	mux.Handle("POST /login", Chain(h, publicChain...))
	mux.Handle("GET /items", Chain(h, authChain...))
	mux.Handle("POST /items", Chain(h, authChain...))
	mux.Handle("PUT /items/{id}", Chain(h, authChain...))
	mux.Handle("DELETE /items/{id}", Chain(h, authChain...))

	// Everything else falls through to the frontend, which answers
	// unknown paths with a JSON 404.
	if cfg.Static != nil {
		mux.Handle("/", Chain(cfg.Static, publicChain...))
	} else {
		mux.Handle("/", Chain(http.HandlerFunc(notFound), publicChain...))
	}

	return mux
}

// notFound is the catch-all for unknown endpoints.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", "TV-SYS-4040")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"endpoint not found"}` + "\n"))
}
