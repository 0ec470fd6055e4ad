package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/bookshelf/internal/catalog"
	"github.com/lehigh-university-libraries/bookshelf/internal/dataset"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a seed file against the catalog rules",
		Long: `Loads a seed file into a fresh catalog and lists every row the catalog
rejects (duplicate ID, empty title or author, unknown status).

Exits non-zero when any row is rejected.`,
		Example: `  bookshelf check ./books.jsonl`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := dataset.NewLoader(args[0]).Load()
			if err != nil {
				return fmt.Errorf("failed to load seed file: %w", err)
			}

			cat := catalog.New()
			rejected := dataset.Seed(cat, rows)

			out := cmd.OutOrStdout()
			for _, r := range rejected {
				fmt.Fprintf(out, "❌ row id=%d title=%q: %v\n", r.Row.ID, r.Row.Title, r.Err)
			}
			fmt.Fprintf(out, "%d rows, %d accepted, %d rejected\n", len(rows), cat.Len(), len(rejected))

			if len(rejected) > 0 {
				return fmt.Errorf("%d of %d rows rejected", len(rejected), len(rows))
			}
			return nil
		},
	}

	return cmd
}
