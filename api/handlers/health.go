// ABOUTME: Health handler for liveness probes
// ABOUTME: Reports service status without touching any external dependency

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler serves the health endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes mounts the health route on the router.
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.GetHealth)
}

// GetHealth reports liveness.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
