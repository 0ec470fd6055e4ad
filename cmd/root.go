package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var logLevel string
	var logFormat string

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "In-memory book catalog with an interactive text menu",
		Long: `Bookshelf manages a catalog of book records (ID, title, author, genre and
availability status) in memory.

Run the interactive menu with "bookshelf shell", or load a seed file and
print or check it with "bookshelf report" and "bookshelf check".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if !cmd.Flags().Changed("log-level") {
				if env := os.Getenv("BOOKSHELF_LOG_LEVEL"); env != "" {
					logLevel = env
				}
			}
			return setupLogging(cmd, logLevel, logFormat)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	// Add subcommands
	cmd.AddCommand(newShellCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// setupLogging installs the default slog logger on stderr so log lines never
// mix with menu output.
func setupLogging(cmd *cobra.Command, level, format string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	case "json":
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		return fmt.Errorf("unsupported log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
