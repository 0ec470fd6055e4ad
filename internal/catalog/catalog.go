// Package catalog holds the in-memory book catalog: an ordered list of
// records with unique identifiers, validated before every mutation.
package catalog

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/lehigh-university-libraries/bookshelf/internal/models"
	"github.com/lehigh-university-libraries/bookshelf/internal/validation"
)

// Catalog is an insertion-ordered collection of books.
// Books handed out by the catalog are copies; the only way to change a
// stored record is through Update.
type Catalog struct {
	books     []models.Book
	validator *validation.Validator
	mu        sync.RWMutex
}

func New() *Catalog {
	return &Catalog{
		validator: validation.New(),
	}
}

// Add validates the input and appends a new book.
// Checks run in order: duplicate id, empty title/author, status.
func (c *Catalog) Add(id int, input models.BookInput) (models.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(id) >= 0 {
		return models.Book{}, fmt.Errorf("book %d: %w", id, ErrDuplicateID)
	}

	input = input.Trimmed()
	if err := c.validator.Validate(input); err != nil {
		return models.Book{}, fmt.Errorf("book %d: %w: %w", id, ErrEmptyField, err)
	}

	status, err := models.ParseStatus(input.Status)
	if err != nil {
		return models.Book{}, fmt.Errorf("book %d: %w", id, err)
	}

	book := models.Book{
		ID:     id,
		Title:  input.Title,
		Author: input.Author,
		Genre:  input.Genre,
		Status: status,
	}
	c.books = append(c.books, book)

	slog.Debug("Book added", "id", id, "title", book.Title, "count", len(c.books))
	return book, nil
}

// FindByID returns the book with id, if any
func (c *Catalog) FindByID(id int) (models.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.Book{}, false
	}
	return c.books[i], true
}

// FindByTitle returns every book whose title equals title, ignoring case.
func (c *Catalog) FindByTitle(title string) []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	title = strings.TrimSpace(title)
	var matches []models.Book
	for _, b := range c.books {
		if strings.EqualFold(b.Title, title) {
			matches = append(matches, b)
		}
	}
	return matches
}

// List returns all books in insertion order
func (c *Catalog) List() []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.books)
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// Update applies the non-blank fields of upd to the book with id.
// Everything is parsed before the record is touched, so a bad status
// leaves the book exactly as it was.
func (c *Catalog) Update(id int, upd models.BookUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}

	book := c.books[i]
	if v, ok := models.Field(upd.Title); ok {
		book.Title = v
	}
	if v, ok := models.Field(upd.Author); ok {
		book.Author = v
	}
	if v, ok := models.Field(upd.Genre); ok {
		book.Genre = v
	}
	if v, ok := models.Field(upd.Status); ok {
		status, err := models.ParseStatus(v)
		if err != nil {
			return fmt.Errorf("book %d: %w", id, err)
		}
		book.Status = status
	}

	c.books[i] = book
	slog.Debug("Book updated", "id", id)
	return nil
}

// Remove deletes the book with id, keeping the order of the rest
func (c *Catalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	c.books = slices.Delete(c.books, i, i+1)

	slog.Debug("Book removed", "id", id, "count", len(c.books))
	return nil
}

// indexOf must be called with mu held.
func (c *Catalog) indexOf(id int) int {
	return slices.IndexFunc(c.books, func(b models.Book) bool {
		return b.ID == id
	})
}
