// Package report prints an arena board for terminals and scripts.
package report

import (
	"time"

	"github.com/okian/arena/pkg/logger"
)

// Format selects the report output.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds what to report and where the board comes from.
type Config struct {
	Period   string        // Period key; empty selects the source's default
	DataPath string        // Snapshot file; empty uses the embedded sample data
	BaseURL  string        // Running dashboard to query instead of a file
	Format   Format        // text or json
	Timeout  time.Duration // HTTP request timeout
	Logger   logger.Logger // Defaults to a no-op logger
}

func (c *Config) logger() logger.Logger {
	if c.Logger == nil {
		return logger.Nop()
	}
	return c.Logger
}
