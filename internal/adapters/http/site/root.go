// Package site serves the server-rendered arena dashboard.
package site

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/pkg/logger"
)

// Error constants.
var (
	ErrRender = errors.New("dashboard render failed")
)

// BoardProvider builds the board of a period; an empty period selects the
// default one.
type BoardProvider interface {
	Board(ctx context.Context, period string) (board.Board, error)
}

// Register attaches the dashboard and its static assets to r.
func Register(_ context.Context, r chi.Router, provider BoardProvider, l logger.Logger) {
	if r == nil {
		panic("router is nil")
	}
	h := NewRootHandler(provider, l)
	r.Get("/", h.HandleRoot)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(FS())))
}

// RootHandler renders the dashboard page.
type RootHandler struct {
	provider BoardProvider
	tmpl     *template.Template
	logger   logger.Logger
}

// NewRootHandler creates a new root handler.
func NewRootHandler(provider BoardProvider, l logger.Logger) *RootHandler {
	if l == nil {
		l = logger.Nop()
	}
	return &RootHandler{provider: provider, tmpl: parseTemplates(), logger: l}
}

// HandleRoot handles GET / and GET /?period=.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	b, err := h.provider.Board(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, model.ErrUnknownPeriod) {
			status = http.StatusBadRequest
		}
		h.render(w, r, status, page{Error: err.Error()})
		return
	}
	h.render(w, r, http.StatusOK, newPage(b))
}

func (h *RootHandler) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "dashboard.html", p); err != nil {
		h.logger.Error(r.Context(), ErrRender.Error(), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
