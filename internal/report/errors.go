package report

import "errors"

// Sentinel error kinds for this package.
var (
	ErrUnknownFormat = errors.New("unknown report format")
	ErrRemote        = errors.New("dashboard request failed")
)
