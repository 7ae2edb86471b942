// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps Dependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps Dependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

type healthResponse struct {
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// HandleHealth handles GET /healthz requests. It reports 503 until a
// snapshot is available.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	snap, err := h.deps.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
		return
	}
	resp := healthResponse{Status: "ok"}
	if !snap.UpdatedAt.IsZero() {
		t := snap.UpdatedAt.Time
		resp.UpdatedAt = &t
	}
	writeJSON(w, http.StatusOK, resp)
}
