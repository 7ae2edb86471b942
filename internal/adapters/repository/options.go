package repository

import "github.com/okian/arena/pkg/logger"

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithPath reads the snapshot from a JSON file instead of the embedded
// sample data.
func WithPath(path string) Option {
	return func(s *FileStore) {
		s.path = path
	}
}

// WithLogger sets the logger used for reload reports.
func WithLogger(l logger.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEmbedded overrides the built-in sample data. Mostly useful in tests.
func WithEmbedded(data []byte) Option {
	return func(s *FileStore) {
		if len(data) > 0 {
			s.embedded = data
		}
	}
}
