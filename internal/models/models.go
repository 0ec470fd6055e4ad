package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is returned when availability text is neither
// "available" nor "checked out".
var ErrInvalidStatus = errors.New("availability status must be either 'Available' or 'Checked Out'")

// Status is the availability of a book
type Status int

const (
	Available Status = iota
	CheckedOut
)

// ParseStatus matches text case-insensitively after trimming
func ParseStatus(text string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "available":
		return Available, nil
	case "checked out":
		return CheckedOut, nil
	default:
		return Available, fmt.Errorf("%w: %q", ErrInvalidStatus, text)
	}
}

func (s Status) String() string {
	switch s {
	case Available:
		return "Available"
	case CheckedOut:
		return "Checked Out"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText lets JSON, YAML and CSV writers use the display form.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the same spellings as ParseStatus.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Book represents one catalog entry
type Book struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Genre  string `json:"genre" yaml:"genre"`
	Status Status `json:"status" yaml:"status"`
}

// String renders the book the way both shells display it
func (b Book) String() string {
	return fmt.Sprintf("Book ID: %d, Title: %s, Author: %s, Genre: %s, Status: %s",
		b.ID, b.Title, b.Author, b.Genre, b.Status)
}

// BookInput holds the raw text a caller supplies when adding a book.
// Fields are trimmed before validation, so whitespace-only values fail "required".
type BookInput struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Genre  string `json:"genre"`
	Status string `json:"status"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (in BookInput) Trimmed() BookInput {
	return BookInput{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
		Genre:  strings.TrimSpace(in.Genre),
		Status: strings.TrimSpace(in.Status),
	}
}

// BookUpdate is a partial update. A nil or blank field leaves the
// corresponding attribute unchanged.
type BookUpdate struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Genre  *string `json:"genre"`
	Status *string `json:"status"`
}

// Field returns the trimmed value of f and whether it was supplied
func Field(f *string) (string, bool) {
	if f == nil {
		return "", false
	}
	v := strings.TrimSpace(*f)
	return v, v != ""
}
