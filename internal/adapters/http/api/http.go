// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/ranking"
	"github.com/okian/arena/pkg/logger"
	"github.com/okian/arena/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Board renders the board of period; an empty period selects the default.
	Board(ctx context.Context, period string) (board.Board, error)
	Indicator(ctx context.Context, period string, key catalog.IndicatorKey) (board.IndicatorView, error)

	Snapshot(ctx context.Context) (*model.Snapshot, error)
	Periods(ctx context.Context) ([]board.PeriodOption, error)
	Houses(ctx context.Context) ([]board.HouseCard, error)
	Indicators() []catalog.Indicator

	// Reload re-reads the snapshot source.
	Reload(ctx context.Context) error
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithChartRenderer enables the PNG chart route.
func WithChartRenderer(r ChartRenderer) Option {
	return func(s *Server) {
		s.chartHandler = NewChartHandler(s.deps, r)
	}
}

// WithCORSOrigins sets the origins allowed to call /api.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.corsOrigins = origins
		}
	}
}

// WithLogger sets the logger handlers report failures to.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	deps        Dependencies
	corsOrigins []string
	logger      logger.Logger

	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	boardHandler  *BoardHandler
	chartHandler  *ChartHandler
	reloadHandler *ReloadHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		deps:          deps,
		corsOrigins:   []string{"*"},
		logger:        logger.Nop(),
		healthHandler: NewHealthHandler(deps),
		statsHandler:  NewStatsHandler(statsProvider),
		boardHandler:  NewBoardHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reloadHandler = NewReloadHandler(deps, s.logger)
	return s
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(ar chi.Router) {
		ar.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))

		ar.Get("/board", MetricsMiddleware(s.boardHandler.HandleBoard, "board"))
		ar.Get("/periods", MetricsMiddleware(s.boardHandler.HandlePeriods, "periods"))
		ar.Get("/indicators", MetricsMiddleware(s.boardHandler.HandleIndicators, "indicators"))
		ar.Get("/indicators/{indicator}", MetricsMiddleware(s.boardHandler.HandleIndicator, "indicator"))
		ar.Get("/houses", MetricsMiddleware(s.boardHandler.HandleHouses, "houses"))
		ar.Post("/reload", MetricsMiddleware(s.reloadHandler.HandleReload, "reload"))
		if s.chartHandler != nil {
			ar.Get("/chart/{period}/{indicator}.png", MetricsMiddleware(s.chartHandler.HandleChart, "chart"))
		}
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain errors into status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrUnknownPeriod):
		return http.StatusBadRequest, "unknown_period"
	case errors.Is(err, model.ErrPeriodNotFound):
		return http.StatusNotFound, "period_not_found"
	case errors.Is(err, board.ErrUnknownIndicator):
		return http.StatusNotFound, "unknown_indicator"
	case errors.Is(err, ranking.ErrMissingDataPoint):
		return http.StatusUnprocessableEntity, "missing_data"
	case errors.Is(err, repository.ErrNotLoaded), errors.Is(err, board.ErrNoSnapshot):
		return http.StatusServiceUnavailable, "no_snapshot"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
