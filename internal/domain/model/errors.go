package model

import "errors"

// Sentinel kinds for model errors.
var (
	ErrUnknownPeriod  = errors.New("unknown period")
	ErrPeriodNotFound = errors.New("period not found in snapshot")
	ErrDecodeSnapshot = errors.New("decode snapshot")
)
