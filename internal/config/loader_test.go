package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/arena/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		// Keep a stray .env in the working directory out of the picture.
		_ = os.Setenv("ARENA_DOTENV", filepath.Join(t.TempDir(), "absent.env"))
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DefaultPeriod, convey.ShouldEqual, "current")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 640)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 360)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("ARENA_ADDR", ":8080")
			_ = os.Setenv("ARENA_DATA_PATH", "/srv/arena/data.json")
			_ = os.Setenv("ARENA_WATCH_DATA", "true")
			_ = os.Setenv("ARENA_DEFAULT_PERIOD", "accumulated")
			_ = os.Setenv("ARENA_CHART_WIDTH", "800")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "/srv/arena/data.json")
				convey.So(cfg.WatchData, convey.ShouldBeTrue)
				convey.So(cfg.DefaultPeriod, convey.ShouldEqual, "accumulated")
				convey.So(cfg.ChartWidth, convey.ShouldEqual, 800)
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 360)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
log_level: debug
cors_origins:
  - https://painel.example.org
chart_height: 480
`)
			_ = os.Setenv("ARENA_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.CORSOrigins, convey.ShouldResemble, []string{"https://painel.example.org"})
				convey.So(cfg.ChartHeight, convey.ShouldEqual, 480)
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("ARENA_ADDR", ":8081")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8081")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When a .env file is present", func() {
			dotenv := filepath.Join(t.TempDir(), ".env")
			convey.So(os.WriteFile(dotenv, []byte("ARENA_ADDR=:7070\nARENA_LOG_LEVEL=warn\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("ARENA_DOTENV", dotenv)
			_ = os.Setenv("ARENA_LOG_LEVEL", "error")

			cfg, err := config.Load(ctx)

			convey.Convey("Then its values apply without overriding the process env", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			_ = os.Setenv("ARENA_CONFIG", createTempConfigFile(t, `invalid: yaml: content: [`))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("ARENA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When validation fails", func() {
			cases := map[string]string{
				"ARENA_ADDR":           "",
				"ARENA_DEFAULT_PERIOD": "yearly",
				"ARENA_CHART_WIDTH":    "0",
				"ARENA_LOG_LEVEL":      "verbose",
			}
			for key, value := range cases {
				clearConfigEnvVars()
				_ = os.Setenv("ARENA_DOTENV", filepath.Join(t.TempDir(), "absent.env"))
				_ = os.Setenv(key, value)

				cfg, err := config.Load(ctx)

				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			}
		})

		convey.Convey("When several settings are invalid", func() {
			cfg := config.New()
			cfg.Addr = ""
			cfg.DefaultPeriod = "yearly"

			err := cfg.Validate()

			convey.Convey("Then every problem is named by its config key", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(err.Error(), convey.ShouldContainSubstring, `default_period "yearly" is not a known period`)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"ARENA_CONFIG",
		"ARENA_DOTENV",
		"ARENA_ADDR",
		"ARENA_LOG_LEVEL",
		"ARENA_DATA_PATH",
		"ARENA_WATCH_DATA",
		"ARENA_DEFAULT_PERIOD",
		"ARENA_CHART_WIDTH",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "arena-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
