package service

import (
	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/board"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the snapshot store. Without one, Start opens a FileStore
// over the embedded sample data.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithBuilder sets the board builder.
func WithBuilder(b *board.Builder) Option {
	return func(s *Service) {
		if b != nil {
			s.builder = b
		}
	}
}

// WithDefaultPeriod sets the period used when a request names none.
func WithDefaultPeriod(p model.PeriodKey) Option {
	return func(s *Service) {
		if p != "" {
			s.defaultPeriod = p
		}
	}
}
