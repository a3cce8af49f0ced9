package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yndnr/todovault-go/internal/core/service"
)

// handleLogin verifies credentials and issues a bearer token.
//
// POST /login
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "TV-SYS-4000", "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), &service.LoginRequest{
		Username: req.Username,
		Password: req.Password,
		ClientIP: ClientIP(r),
	})
	if err != nil {
		if h.metrics != nil {
			h.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		h.handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.LoginsTotal.WithLabelValues("success").Inc()
	}
	h.logger.Info("user logged in",
		"username", resp.User.Username,
		"user_id", resp.User.ID,
		"client_ip", ClientIP(r),
	)

	h.writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   resp.Token,
		User:    resp.User,
	})
}
