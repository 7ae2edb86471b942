package repository

import "errors"

// Sentinel kinds for repository errors.
var (
	ErrNotLoaded  = errors.New("snapshot not loaded")
	ErrReadSource = errors.New("read snapshot source")
	ErrWatch      = errors.New("watch snapshot source")
)
