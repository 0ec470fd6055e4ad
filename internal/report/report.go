// Package report prints catalog listings in text, JSON, CSV or YAML.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lehigh-university-libraries/bookshelf/internal/models"
	"gopkg.in/yaml.v3"
)

// Formats lists the accepted values for Write's format argument
var Formats = []string{"text", "json", "csv", "yaml"}

// EmptyMessage is printed by the text format when there is nothing to list
const EmptyMessage = "No books in the system."

// listing is the document written by the YAML format
type listing struct {
	Books []models.Book `yaml:"books"`
}

// Write renders books to w in the given format
func Write(w io.Writer, books []models.Book, format string) error {
	if books == nil {
		books = []models.Book{}
	}

	switch format {
	case "text":
		return writeText(w, books)
	case "json":
		return writeJSON(w, books)
	case "csv":
		return writeCSV(w, books)
	case "yaml":
		return writeYAML(w, books)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, books []models.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	for _, b := range books {
		if _, err := fmt.Fprintln(w, b); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, books []models.Book) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(books)
}

func writeCSV(w io.Writer, books []models.Book) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"ID", "Title", "Author", "Genre", "Status"}); err != nil {
		return err
	}
	for _, b := range books {
		row := []string{strconv.Itoa(b.ID), b.Title, b.Author, b.Genre, b.Status.String()}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeYAML(w io.Writer, books []models.Book) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(listing{Books: books}); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return encoder.Close()
}
