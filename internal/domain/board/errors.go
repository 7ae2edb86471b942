package board

import "errors"

// Sentinel kinds for board errors.
var (
	ErrNoSnapshot       = errors.New("no snapshot loaded")
	ErrUnknownIndicator = errors.New("unknown indicator")
)
