package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/ranking"
)

// ChartRenderer draws an indicator section as an image.
type ChartRenderer interface {
	Render(w io.Writer, view board.IndicatorView) error
}

// ChartHandler serves PNG charts.
type ChartHandler struct {
	deps     Dependencies
	renderer ChartRenderer
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies, renderer ChartRenderer) *ChartHandler {
	return &ChartHandler{deps: deps, renderer: renderer}
}

// HandleChart handles GET /api/chart/{period}/{indicator}.png. An indicator
// with data gaps still renders, with empty bars.
func (h *ChartHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	period := chi.URLParam(r, "period")
	key := catalog.IndicatorKey(chi.URLParam(r, "indicator"))

	view, err := h.deps.Indicator(r.Context(), period, key)
	if err != nil && !errors.Is(err, ranking.ErrMissingDataPoint) {
		writeDomainError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", fmt.Errorf("%w: %w", ErrRender, err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
