package dataset

import (
	"log/slog"

	"github.com/lehigh-university-libraries/bookshelf/internal/catalog"
)

// Rejection records a row the catalog refused
type Rejection struct {
	Row Row
	Err error
}

// Seed adds rows to cat in order. A rejected row is reported and skipped;
// it never stops the rest of the load.
func Seed(cat *catalog.Catalog, rows []Row) []Rejection {
	var rejected []Rejection
	for _, row := range rows {
		if _, err := cat.Add(row.ID, row.Input()); err != nil {
			slog.Warn("Seed row rejected", "id", row.ID, "title", row.Title, "err", err)
			rejected = append(rejected, Rejection{Row: row, Err: err})
		}
	}

	slog.Info("Catalog seeded", "rows", len(rows), "added", len(rows)-len(rejected), "rejected", len(rejected))
	return rejected
}
