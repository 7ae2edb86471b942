// Package repository holds the snapshot the dashboard renders from.
package repository

import (
	"context"

	"github.com/okian/arena/internal/domain/model"
)

// Store provides read access to the current snapshot.
type Store interface {
	// Current returns the snapshot to render. Callers must treat it as
	// read-only; a reload replaces it instead of mutating it.
	Current(ctx context.Context) (*model.Snapshot, error)

	// Reload re-reads the source. On failure the previous snapshot stays.
	Reload(ctx context.Context) error

	// Source describes where the snapshot comes from.
	Source() string

	// Version identifies the current load; it changes on every successful
	// reload and is empty before the first one.
	Version() string

	// Close releases watchers and other resources.
	Close() error
}
