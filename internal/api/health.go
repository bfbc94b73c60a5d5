package api

import (
	"net/http"
	"time"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/respond"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	configured bool
}

// NewHealthHandler creates a new health handler. configured reports whether
// any identifier is allowlisted; an empty allowlist rejects every login.
func NewHealthHandler(configured bool) *HealthHandler {
	return &HealthHandler{configured: configured}
}

// CheckHealth handles GET /api/health
// Always returns 200; the body says whether credentials are configured.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.configured {
		status = "unconfigured"
	}
	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	respond.WriteJSON(w, http.StatusOK, response)
}
