package dataset

import "github.com/lehigh-university-libraries/bookshelf/internal/models"

// Row is one book as it appears in a seed file. Status stays raw text so it
// goes through the same validation as interactive input.
type Row struct {
	ID     int    `json:"id" yaml:"id" parquet:"id"`
	Title  string `json:"title" yaml:"title" parquet:"title"`
	Author string `json:"author" yaml:"author" parquet:"author"`
	Genre  string `json:"genre" yaml:"genre" parquet:"genre"`
	Status string `json:"status" yaml:"status" parquet:"status"`
}

// Input converts the row into catalog input
func (r Row) Input() models.BookInput {
	return models.BookInput{
		Title:  r.Title,
		Author: r.Author,
		Genre:  r.Genre,
		Status: r.Status,
	}
}

// seedFile is the layout of a YAML seed file
type seedFile struct {
	Books []Row `yaml:"books"`
}
