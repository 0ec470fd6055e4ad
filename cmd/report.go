package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lehigh-university-libraries/bookshelf/internal/catalog"
	"github.com/lehigh-university-libraries/bookshelf/internal/dataset"
	"github.com/lehigh-university-libraries/bookshelf/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "Print the catalog built from a seed file",
		Long: `Loads a seed file into a fresh catalog and prints every accepted book.

Rows rejected by catalog validation are left out; use "bookshelf check" to
see why.`,
		Example: `  # Human readable listing
  bookshelf report ./books.yaml

  # CSV for a spreadsheet
  bookshelf report ./books.parquet --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(report.Formats, format) {
				return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(report.Formats, ", "))
			}

			rows, err := dataset.NewLoader(args[0]).Load()
			if err != nil {
				return fmt.Errorf("failed to load seed file: %w", err)
			}

			cat := catalog.New()
			dataset.Seed(cat, rows)

			return report.Write(cmd.OutOrStdout(), cat.List(), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv, yaml)")

	return cmd
}
