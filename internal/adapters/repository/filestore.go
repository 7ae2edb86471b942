package repository

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/oklog/ulid/v2"

	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/pkg/logger"
	"github.com/okian/arena/pkg/metrics"
)

const embeddedSource = "embedded:mock.json"

//go:embed mock.json
var mockSnapshot []byte

// FileStore serves a snapshot read from a JSON file, or from the embedded
// sample data when no path is configured.
type FileStore struct {
	path     string
	embedded []byte
	logger   logger.Logger

	provider *file.File
	current  atomic.Pointer[loaded]

	// reloads are serialized; readers never block.
	mu       sync.Mutex
	watching bool
}

var _ Store = (*FileStore)(nil)

// loaded pairs a snapshot with the id of the load that produced it.
type loaded struct {
	snap     *model.Snapshot
	version  ulid.ULID
	loadedAt time.Time
}

// NewFileStore creates a store and performs the initial load.
func NewFileStore(ctx context.Context, opts ...Option) (*FileStore, error) {
	s := &FileStore{
		embedded: mockSnapshot,
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.path != "" {
		s.provider = file.Provider(s.path)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Current implements Store.
func (s *FileStore) Current(_ context.Context) (*model.Snapshot, error) {
	cur := s.current.Load()
	if cur == nil {
		return nil, ErrNotLoaded
	}
	return cur.snap, nil
}

// Version implements Store. Ids are ULIDs, so they sort by load time.
func (s *FileStore) Version() string {
	cur := s.current.Load()
	if cur == nil {
		return ""
	}
	return cur.version.String()
}

// LoadedAt returns when the current snapshot was loaded.
func (s *FileStore) LoadedAt() time.Time {
	cur := s.current.Load()
	if cur == nil {
		return time.Time{}
	}
	return cur.loadedAt
}

// Source implements Store.
func (s *FileStore) Source() string {
	if s.path == "" {
		return embeddedSource
	}
	return s.path
}

// Reload implements Store.
func (s *FileStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		metrics.RecordSnapshotReload("error")
		s.logger.Error(ctx, "snapshot read failed", logger.String("source", s.Source()), logger.Error(err))
		return err
	}
	snap, err := model.DecodeSnapshot(data)
	if err != nil {
		metrics.RecordSnapshotReload("error")
		s.logger.Error(ctx, "snapshot decode failed", logger.String("source", s.Source()), logger.Error(err))
		return err
	}

	now := time.Now()
	version := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy())
	s.current.Store(&loaded{snap: snap, version: version, loadedAt: now})
	metrics.RecordSnapshotReload("ok")
	metrics.UpdateSnapshotTimestamp(snap.UpdatedAt.Time)
	s.logger.Info(ctx, "snapshot loaded",
		logger.String("source", s.Source()),
		logger.String("version", version.String()),
		logger.String("updated_at", snap.UpdatedAt.String()),
		logger.Int("periods", len(snap.Periods)),
	)
	return nil
}

// Watch reloads the snapshot whenever the file changes, until ctx is done.
// It returns immediately when the store serves embedded data.
func (s *FileStore) Watch(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		return nil
	}
	s.watching = true
	s.mu.Unlock()

	err := s.provider.Watch(func(_ interface{}, err error) {
		if err != nil {
			s.logger.Warn(ctx, "snapshot watch error", logger.String("source", s.Source()), logger.Error(err))
			return
		}
		// Errors are logged and counted by Reload; the old snapshot stays.
		_ = s.Reload(ctx)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	s.logger.Info(ctx, "watching snapshot source", logger.String("source", s.Source()))

	<-ctx.Done()
	return s.Close()
}

// Close stops watching the source. Unwatch runs without s.mu held: it waits
// for the watch callback, which may be inside Reload.
func (s *FileStore) Close() error {
	s.mu.Lock()
	if s.provider == nil || !s.watching {
		s.mu.Unlock()
		return nil
	}
	s.watching = false
	s.mu.Unlock()

	if err := s.provider.Unwatch(); err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	return nil
}

func (s *FileStore) read() ([]byte, error) {
	if s.provider == nil {
		return s.embedded, nil
	}
	data, err := s.provider.ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	return data, nil
}
