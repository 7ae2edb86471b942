// Command arena-report prints the arena board in a terminal, from a
// snapshot file or from a running dashboard.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/arena/internal/report"
	"github.com/okian/arena/pkg/logger"
)

const defaultTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "arena-report",
		Short:        "Print the Arena das Casas board",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !verbose {
				return nil
			}
			if err := logger.Init("stderr"); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return logger.SetLevelString("debug")
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newBoardCmd(&verbose), newHealthCmd())
	return root
}

func newBoardCmd(verbose *bool) *cobra.Command {
	cfg := &report.Config{}
	var format string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the board of a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Format = report.Format(format)
			if *verbose {
				cfg.Logger = logger.Named("report")
			}
			return report.Run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Period, "period", "p", "", "period key: current or accumulated")
	f.StringVarP(&cfg.DataPath, "data", "d", "", "snapshot JSON file (default: embedded sample data)")
	f.StringVarP(&cfg.BaseURL, "url", "u", "", "query a running dashboard instead of a file")
	f.StringVarP(&format, "format", "f", string(report.FormatText), "output format: text or json")
	f.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "HTTP request timeout")
	cmd.MarkFlagsMutuallyExclusive("data", "url")
	return cmd
}

func newHealthCmd() *cobra.Command {
	cfg := &report.Config{}

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that a running dashboard has data loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := report.CheckHealth(cmd.Context(), cfg); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
	cmd.Flags().StringVarP(&cfg.BaseURL, "url", "u", "http://localhost:9080", "dashboard base URL")
	cmd.Flags().DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "HTTP request timeout")
	return cmd
}
