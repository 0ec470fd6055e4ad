package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/bookshelf/internal/models"
)

// Error kinds returned by catalog operations. Match them with errors.Is.
var (
	ErrDuplicateID   = errors.New("book ID already exists")
	ErrEmptyField    = errors.New("required field is empty")
	ErrInvalidStatus = models.ErrInvalidStatus
	ErrNotFound      = errors.New("no book found with the provided ID")
	ErrMalformedID   = errors.New("book ID must be an integer")
)

// ParseID parses a user-supplied book identifier
func ParseID(text string) (int, error) {
	text = strings.TrimSpace(text)
	id, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, text)
	}
	return id, nil
}
