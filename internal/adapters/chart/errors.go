package chart

import "errors"

// Sentinel error kinds for chart rendering.
var (
	ErrEmptyView = errors.New("nothing to chart")
	ErrRender    = errors.New("chart render failed")
)
