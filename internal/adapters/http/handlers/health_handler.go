package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Every check is listed; the status is
// 503 only when the registry reports not ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, err := range report.Checks {
		if err != nil {
			checks[name] = err.Error()
		} else {
			checks[name] = statusOK
		}
	}

	status, code := statusReady, http.StatusOK
	if !report.Ready {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
