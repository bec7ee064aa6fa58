// Package cmd provides the navigator CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zatekoja/costnavigator/internal/bootstrap"
	"github.com/zatekoja/costnavigator/internal/infrastructure/observability"
	"github.com/zatekoja/costnavigator/pkg/config"
)

var (
	verbose bool
	compact bool
)

var rootCmd = &cobra.Command{
	Use:   "navigator",
	Short: "Find and compare hospital prices for a procedure near a ZIP code",
	Long: `navigator queries the same provider store as the HTTP API.

Examples:
  navigator providers --drg 470 --zip 10001 --radius-km 25
  navigator providers --drg "heart failure" --zip 02134 --sort rating
  navigator ask "cheapest knee replacement near 10001 within 30 km"`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVar(&compact, "compact", false, "print single-line JSON")

	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(askCmd)
}

// withApp loads config, wires the application and hands it to fn.
// Logs go to stderr so stdout carries only the JSON result.
func withApp(ctx context.Context, fn func(*bootstrap.App) (any, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	observability.InitLoggerTo(os.Stderr, "navigator", cfg.Env)
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := observability.GetLogger().Level(level)

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	out, err := fn(app)
	if err != nil {
		return err
	}
	return printJSON(out)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
