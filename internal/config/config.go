// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers a .env file, an optional YAML file and ARENA_* env vars on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"time"

	"github.com/okian/arena/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr" validate:"required"`

	// DataPath points at a snapshot JSON file. Empty serves the embedded mock data.
	DataPath string `koanf:"data_path"`

	// WatchData reloads the snapshot whenever DataPath changes on disk.
	WatchData bool `koanf:"watch_data"`

	// DefaultPeriod is shown when a request does not pick one.
	DefaultPeriod string `koanf:"default_period" validate:"period"`

	// CORSOrigins lists origins allowed to call /api.
	CORSOrigins []string `koanf:"cors_origins" validate:"dive,required"`

	// ChartWidth and ChartHeight size rendered PNG charts in pixels.
	ChartWidth  int `koanf:"chart_width" validate:"gt=0"`
	ChartHeight int `koanf:"chart_height" validate:"gt=0"`

	// ShutdownTimeoutS bounds graceful shutdown in seconds.
	ShutdownTimeoutS int `koanf:"shutdown_timeout_s" validate:"gte=0"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		DataPath:         "",
		WatchData:        false,
		DefaultPeriod:    string(model.PeriodCurrent),
		CORSOrigins:      []string{"*"},
		ChartWidth:       640,
		ChartHeight:      360,
		ShutdownTimeoutS: 10,
	}
}

// ShutdownTimeout returns ShutdownTimeoutS as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutS) * time.Second
}
