package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/donation-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/donation-service/internal/ports"
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
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. It is 200 while the catalog is
// populated and the webhook breaker is closed, and 503 otherwise, so a
// replica whose webhook is failing stops taking donations.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := readiness(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if resp.Status != statusReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}

func readiness(results map[string]error) dto.HealthResponse {
	resp := dto.HealthResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = statusNotReady
			continue
		}
		resp.Checks[name] = statusOK
	}
	return resp
}
