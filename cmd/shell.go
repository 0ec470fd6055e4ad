package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/bookshelf/internal/catalog"
	"github.com/lehigh-university-libraries/bookshelf/internal/dataset"
	"github.com/lehigh-university-libraries/bookshelf/internal/shell"
	"github.com/spf13/cobra"
)

func newShellCmd() *cobra.Command {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive library menu",
		Long: `Starts the text menu for adding, viewing, searching, updating and deleting books.

The catalog lives in memory and is discarded on exit. A seed file (YAML,
JSON Lines or Parquet) can pre-populate it; rows that fail validation are
logged and skipped.`,
		Example: `  # Start with an empty catalog
  bookshelf shell

  # Start with books from a seed file
  bookshelf shell --seed ./books.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedPath == "" {
				seedPath = os.Getenv("BOOKSHELF_SEED")
			}

			cat := catalog.New()
			if seedPath != "" {
				rows, err := dataset.NewLoader(seedPath).Load()
				if err != nil {
					return fmt.Errorf("failed to load seed file: %w", err)
				}
				dataset.Seed(cat, rows)
			}

			slog.Info("Starting shell", "books", cat.Len())
			shell.New(cat, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "Seed file to load at startup (defaults to $BOOKSHELF_SEED)")

	return cmd
}
