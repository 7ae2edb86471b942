package service

import (
	"fmt"

	"github.com/okian/arena/internal/domain/board"
)

// Sentinel error kinds for this package.
var (
	ErrNotStarted = fmt.Errorf("service not started: %w", board.ErrNoSnapshot)
)
