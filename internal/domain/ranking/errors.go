package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrMissingDataPoint = errors.New("missing data point")
	ErrNoHouses         = errors.New("no houses to rank")
	ErrNoBestHouse      = errors.New("no house has a comparable value")
)
