package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/arena/internal/domain/catalog"
)

// BoardHandler serves the board and its catalogs.
type BoardHandler struct {
	deps Dependencies
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(deps Dependencies) *BoardHandler {
	return &BoardHandler{deps: deps}
}

// HandleBoard handles GET /api/board?period=.
func (h *BoardHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	b, err := h.deps.Board(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// HandleIndicator handles GET /api/indicators/{indicator}?period=.
func (h *BoardHandler) HandleIndicator(w http.ResponseWriter, r *http.Request) {
	key := catalog.IndicatorKey(chi.URLParam(r, "indicator"))
	view, err := h.deps.Indicator(r.Context(), r.URL.Query().Get("period"), key)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandlePeriods handles GET /api/periods.
func (h *BoardHandler) HandlePeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.deps.Periods(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, periods)
}

// HandleIndicators handles GET /api/indicators.
func (h *BoardHandler) HandleIndicators(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Indicators())
}

// HandleHouses handles GET /api/houses.
func (h *BoardHandler) HandleHouses(w http.ResponseWriter, r *http.Request) {
	houses, err := h.deps.Houses(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, houses)
}
