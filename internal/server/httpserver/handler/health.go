package handler

import (
	"net/http"

	"github.com/yndnr/todovault-go/internal/infra/buildinfo"
)

// handleHealth reports process liveness.
//
// GET /health
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
	})
}

// handleReady reports readiness to serve traffic. The stores are
// in-memory and ready as soon as the process is up.
//
// GET /ready
func (h *Handler) handleReady(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ready",
		Version: buildinfo.Version,
	})
}
