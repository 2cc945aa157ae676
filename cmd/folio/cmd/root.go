package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/as1coder/portfolioBuilder/internal/app"
	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Replaced in tests.
var (
	appFs      afero.Fs = afero.NewOsFs()
	loadConfig          = func() config.Provider { return config.New() }
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio operator CLI",
	Long: `Folio is the operator command line for the portfolio builder.

Available commands:
  templates    List the portfolio templates
  events       List the events published on the bus
  export       Export a portfolio as json, yaml or html
  avatar       Set a profile image from a local file

Store commands read STORE_DRIVER and the matching settings from the
environment or a .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// stderr, so exports can be piped.
		slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), os.Getenv("LOG_FORMAT"), getenv("LOG_LEVEL", "warn")))
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// withBackend opens the configured store for the duration of fn.
func withBackend(ctx context.Context, fn func(cfg config.Provider, b *app.Backend) error) error {
	cfg := loadConfig()
	b, err := app.OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(cfg, b)
}
