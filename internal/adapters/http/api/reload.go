package api

import (
	"net/http"

	"github.com/okian/arena/pkg/logger"
)

// ReloadHandler triggers a snapshot reload.
type ReloadHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies, l logger.Logger) *ReloadHandler {
	return &ReloadHandler{deps: deps, logger: l}
}

type reloadResponse struct {
	Status string `json:"status"`
}

// HandleReload handles POST /api/reload. A failed reload keeps serving the
// previous snapshot and answers 502.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Reload(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "manual reload failed", logger.Error(err))
		writeError(w, http.StatusBadGateway, "reload_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{Status: "reloaded"})
}
