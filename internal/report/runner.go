package report

import (
	"context"
	"fmt"
	"io"

	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/pkg/logger"
)

// Run loads the board described by cfg and writes it to w.
func Run(ctx context.Context, cfg *Config, w io.Writer) error {
	b, err := Load(ctx, cfg)
	if err != nil {
		return err
	}
	return Write(w, b, cfg.Format)
}

// Load builds the board locally from a snapshot file, or fetches it from a
// running dashboard when BaseURL is set.
func Load(ctx context.Context, cfg *Config) (board.Board, error) {
	if cfg.BaseURL != "" {
		cfg.logger().Debug(ctx, "fetching board", logger.String("url", cfg.BaseURL), logger.String("period", cfg.Period))
		return newHTTPClient(cfg.BaseURL, cfg.Timeout).FetchBoard(ctx, cfg.Period)
	}

	period := model.PeriodCurrent
	if cfg.Period != "" {
		p, err := model.ParsePeriod(cfg.Period)
		if err != nil {
			return board.Board{}, err
		}
		period = p
	}

	var opts []repository.Option
	if cfg.DataPath != "" {
		opts = append(opts, repository.WithPath(cfg.DataPath))
	}
	opts = append(opts, repository.WithLogger(cfg.logger()))
	store, err := repository.NewFileStore(ctx, opts...)
	if err != nil {
		return board.Board{}, fmt.Errorf("load snapshot: %w", err)
	}
	defer func() { _ = store.Close() }()

	snap, err := store.Current(ctx)
	if err != nil {
		return board.Board{}, err
	}
	return board.Build(snap, period)
}

// CheckHealth probes a running dashboard.
func CheckHealth(ctx context.Context, cfg *Config) error {
	return newHTTPClient(cfg.BaseURL, cfg.Timeout).CheckHealth(ctx)
}
