// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/catalog"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/ranking"
	"github.com/okian/arena/pkg/logger"
	"github.com/okian/arena/pkg/metrics"
)

// Service renders boards from the current snapshot.
type Service struct {
	mu sync.RWMutex

	store         repository.Store
	builder       *board.Builder
	defaultPeriod model.PeriodKey
	ownsStore     bool

	started   bool
	startedAt time.Time
	builds    int64
	failures  int64

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		builder:       board.NewBuilder(),
		defaultPeriod: model.PeriodCurrent,
		logger:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the store when none was provided.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.store == nil {
		store, err := repository.NewFileStore(ctx, repository.WithLogger(s.logger))
		if err != nil {
			return fmt.Errorf("open snapshot store: %w", err)
		}
		s.store = store
		s.ownsStore = true
	}

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "arena service started",
		logger.String("source", s.store.Source()),
		logger.String("default_period", string(s.defaultPeriod)),
	)
	return nil
}

// Stop releases the store if the service opened it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if s.ownsStore {
		if err := s.store.Close(); err != nil {
			s.logger.Warn(context.Background(), "closing snapshot store", logger.Error(err))
		}
	}
	s.started = false
	s.logger.Info(context.Background(), "arena service stopped")
}

// DefaultPeriod returns the period used when a request names none.
func (s *Service) DefaultPeriod() model.PeriodKey {
	return s.defaultPeriod
}

// Board builds the board for period. An empty period selects the default.
func (s *Service) Board(ctx context.Context, period string) (board.Board, error) {
	start := time.Now()
	key, snap, err := s.resolve(ctx, period)
	if err != nil {
		s.fail(ctx, err)
		return board.Board{}, err
	}

	b, err := s.builder.Build(snap, key)
	if err != nil {
		s.fail(ctx, err)
		return board.Board{}, err
	}

	s.mu.Lock()
	s.builds++
	s.mu.Unlock()
	latencyMs := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordBoardBuild(string(key), latencyMs)
	complete := true
	for _, ind := range b.Indicators {
		if ind.Missing {
			complete = false
			metrics.RecordBoardError("missing_data")
			s.logger.Warn(ctx, "indicator has missing data",
				logger.String("period", string(key)),
				logger.String("indicator", string(ind.Indicator.Key)),
			)
			continue
		}
		for _, v := range ind.Values {
			metrics.UpdateIndicatorValue(string(key), string(ind.Indicator.Key), string(v.House), v.Value, v.Best)
		}
	}
	s.logger.Debug(ctx, "board built",
		logger.String("period", string(key)),
		logger.Float64("latency_ms", latencyMs),
		logger.Bool("complete", complete),
	)
	return b, nil
}

// Indicator builds a single indicator section for period.
func (s *Service) Indicator(ctx context.Context, period string, key catalog.IndicatorKey) (board.IndicatorView, error) {
	p, snap, err := s.resolve(ctx, period)
	if err != nil {
		s.fail(ctx, err)
		return board.IndicatorView{}, err
	}
	view, err := s.builder.Indicator(snap, p, key)
	if err != nil {
		s.fail(ctx, err)
		return view, err
	}
	return view, nil
}

// Snapshot returns the snapshot currently served.
func (s *Service) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	if err := s.ensureStarted(); err != nil {
		return nil, err
	}
	return s.store.Current(ctx)
}

// Periods lists the periods present in the snapshot, in display order.
func (s *Service) Periods(ctx context.Context) ([]board.PeriodOption, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]board.PeriodOption, 0, len(model.PeriodOrder))
	for _, k := range model.PeriodOrder {
		p, ok := snap.Periods[k]
		if !ok {
			continue
		}
		out = append(out, board.PeriodOption{Key: k, Label: p.Label, Selected: k == s.defaultPeriod})
	}
	return out, nil
}

// Houses returns the house cards in display order, without win counts.
func (s *Service) Houses(ctx context.Context) ([]board.HouseCard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]board.HouseCard, 0, len(catalog.HouseOrder))
	for _, h := range catalog.HouseOrder {
		out = append(out, board.HouseCard{Key: h, House: snap.Houses[h], Style: catalog.StyleOf(h)})
	}
	return out, nil
}

// Indicators returns the indicator catalog.
func (s *Service) Indicators() []catalog.Indicator {
	return catalog.Indicators
}

// Reload re-reads the snapshot source.
func (s *Service) Reload(ctx context.Context) error {
	if err := s.ensureStarted(); err != nil {
		return err
	}
	return s.store.Reload(ctx)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"defaultPeriod": string(s.defaultPeriod),
		"boardBuilds":   s.builds,
		"boardFailures": s.failures,
	}
	if !s.started {
		return stats
	}

	stats["source"] = s.store.Source()
	stats["version"] = s.store.Version()
	stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	if snap, err := s.store.Current(context.Background()); err == nil {
		stats["updatedAt"] = snap.UpdatedAt.Time
		stats["periods"] = len(snap.Periods)
		stats["houses"] = len(snap.Houses)
	}
	return stats
}

func (s *Service) ensureStarted() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, period string) (model.PeriodKey, *model.Snapshot, error) {
	if period == "" {
		period = string(s.defaultPeriod)
	}
	key, err := model.ParsePeriod(period)
	if err != nil {
		return "", nil, err
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", nil, err
	}
	return key, snap, nil
}

func (s *Service) fail(ctx context.Context, err error) {
	s.mu.Lock()
	s.failures++
	s.mu.Unlock()

	kind := ErrorKind(err)
	metrics.RecordBoardError(kind)
	s.logger.Warn(ctx, "board request failed", logger.String("kind", kind), logger.Error(err))
}

// ErrorKind maps an error to a short label for metrics and API codes.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, model.ErrUnknownPeriod):
		return "unknown_period"
	case errors.Is(err, model.ErrPeriodNotFound):
		return "period_not_found"
	case errors.Is(err, board.ErrUnknownIndicator):
		return "unknown_indicator"
	case errors.Is(err, ranking.ErrMissingDataPoint):
		return "missing_data"
	case errors.Is(err, repository.ErrNotLoaded), errors.Is(err, board.ErrNoSnapshot):
		return "no_snapshot"
	default:
		return "internal"
	}
}
