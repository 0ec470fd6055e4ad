// Package shell implements the interactive text menu over a catalog.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/bookshelf/internal/catalog"
	"github.com/lehigh-university-libraries/bookshelf/internal/models"
	"github.com/lehigh-university-libraries/bookshelf/internal/report"
	"github.com/lehigh-university-libraries/bookshelf/internal/validation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const menu = `
----- Library Management System -----
1. Add a Book
2. View All Books
3. Search Book by ID or Title
4. Update Book Details
5. Delete a Book Record
6. Exit
Enter your choice: `

const (
	choiceAdd = iota + 1
	choiceView
	choiceSearch
	choiceUpdate
	choiceDelete
	choiceExit
)

// maxLineLength bounds a single line of input
const maxLineLength = 10 * 1024 * 1024 // 10MB

// Shell reads commands line by line from in and writes prompts and
// results to out. It never stops on a catalog error.
type Shell struct {
	cat     *catalog.Catalog
	scanner *bufio.Scanner
	out     io.Writer
	title   cases.Caser

	lines   chan string
	readErr error // set before lines is closed
}

func New(cat *catalog.Catalog, in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	return &Shell{
		cat:     cat,
		scanner: scanner,
		out:     out,
		title:   cases.Title(language.English),
	}
}

// Run loops until the user exits, input ends, or ctx is cancelled.
// A failure reading the input is reported to the user like any other error.
func (s *Shell) Run(ctx context.Context) {
	slog.Debug("Shell started", "books", s.cat.Len())

	// releases the reader goroutine when the session ends
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.startReader(ctx)

	for {
		if ctx.Err() != nil {
			slog.Debug("Shell cancelled", "err", ctx.Err())
			return
		}

		fmt.Fprint(s.out, menu)
		line, err := s.readLine(ctx)
		if err != nil {
			s.stop(err)
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case choiceAdd:
			s.addBook(ctx)
		case choiceView:
			s.viewBooks()
		case choiceSearch:
			s.searchBook(ctx)
		case choiceUpdate:
			s.updateBook(ctx)
		case choiceDelete:
			s.deleteBook(ctx)
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting system. Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Please choose a valid option between 1 and 6.")
		}
	}
}

// startReader scans input on its own goroutine so a blocked read never
// hides a cancelled context.
func (s *Shell) startReader(ctx context.Context) {
	s.lines = make(chan string)
	go func() {
		defer close(s.lines)
		for s.scanner.Scan() {
			select {
			case s.lines <- s.scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		s.readErr = s.scanner.Err()
	}()
}

// readLine returns the next line, io.EOF at end of input, the read error,
// or the context error.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", s.readErr
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// stop ends the session for a readLine error
func (s *Shell) stop(err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		slog.Debug("Shell cancelled", "err", err)
		fmt.Fprintln(s.out)
		return
	case errors.Is(err, io.EOF):
	default:
		slog.Warn("Unable to read input", "err", err)
		fmt.Fprintf(s.out, "\nUnable to read input: %v", err)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Exiting system. Goodbye!")
}

// prompt prints label and returns the trimmed reply. ok is false once
// input has ended or ctx is cancelled.
func (s *Shell) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(s.out, label)
	line, err := s.readLine(ctx)
	return strings.TrimSpace(line), err == nil
}

// promptID reads a book identifier, reporting malformed input itself
func (s *Shell) promptID(ctx context.Context, label string) (int, bool) {
	text, ok := s.prompt(ctx, label)
	if !ok {
		return 0, false
	}
	id, err := catalog.ParseID(text)
	if err != nil {
		s.report(err)
		return 0, false
	}
	return id, true
}

func (s *Shell) addBook(ctx context.Context) {
	id, ok := s.promptID(ctx, "Enter Book ID (integer): ")
	if !ok {
		return
	}
	if _, exists := s.cat.FindByID(id); exists {
		s.report(catalog.ErrDuplicateID)
		return
	}

	var in models.BookInput
	if in.Title, ok = s.prompt(ctx, "Enter Title: "); !ok {
		return
	}
	if in.Title == "" {
		s.report(validation.FieldErrors{"title": "cannot be empty"})
		return
	}
	if in.Author, ok = s.prompt(ctx, "Enter Author: "); !ok {
		return
	}
	if in.Author == "" {
		s.report(validation.FieldErrors{"author": "cannot be empty"})
		return
	}
	if in.Genre, ok = s.prompt(ctx, "Enter Genre: "); !ok {
		return
	}
	if in.Status, ok = s.prompt(ctx, "Enter Availability Status (Available/Checked Out): "); !ok {
		return
	}

	if _, err := s.cat.Add(id, in); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Book added successfully!")
}

func (s *Shell) viewBooks() {
	books := s.cat.List()
	if len(books) > 0 {
		fmt.Fprintln(s.out, "\n----- List of Books -----")
	}
	if err := report.Write(s.out, books, "text"); err != nil {
		slog.Error("Unable to write book list", "err", err)
	}
}

func (s *Shell) searchBook(ctx context.Context) {
	fmt.Fprintln(s.out, "Search by: 1. ID  2. Title")
	choice, ok := s.prompt(ctx, "Enter choice: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		id, ok := s.promptID(ctx, "Enter Book ID: ")
		if !ok {
			return
		}
		book, found := s.cat.FindByID(id)
		if !found {
			s.report(catalog.ErrNotFound)
			return
		}
		fmt.Fprintln(s.out, "Book found: ")
		fmt.Fprintln(s.out, book)
	case "2":
		title, ok := s.prompt(ctx, "Enter Title to search: ")
		if !ok {
			return
		}
		matches := s.cat.FindByTitle(title)
		if len(matches) == 0 {
			fmt.Fprintln(s.out, "No book found with the provided title.")
			return
		}
		for _, book := range matches {
			fmt.Fprintln(s.out, "Book found: ")
			fmt.Fprintln(s.out, book)
		}
	default:
		fmt.Fprintln(s.out, "Invalid choice. Please select 1 or 2.")
	}
}

func (s *Shell) updateBook(ctx context.Context) {
	id, ok := s.promptID(ctx, "Enter the Book ID to update: ")
	if !ok {
		return
	}
	if _, exists := s.cat.FindByID(id); !exists {
		s.report(catalog.ErrNotFound)
		return
	}

	fmt.Fprintln(s.out, "Leave a field blank if you do not wish to update it.")
	var upd models.BookUpdate
	fields := []struct {
		label string
		dst   **string
	}{
		{"Enter new Title: ", &upd.Title},
		{"Enter new Author: ", &upd.Author},
		{"Enter new Genre: ", &upd.Genre},
		{"Enter new Availability Status (Available/Checked Out): ", &upd.Status},
	}

	for _, f := range fields {
		v, ok := s.prompt(ctx, f.label)
		if !ok {
			return
		}
		*f.dst = &v
	}

	if err := s.cat.Update(id, upd); err != nil {
		if errors.Is(err, catalog.ErrInvalidStatus) {
			fmt.Fprintln(s.out, "Invalid availability status. Update aborted.")
			return
		}
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Book details updated successfully!")
}

func (s *Shell) deleteBook(ctx context.Context) {
	id, ok := s.promptID(ctx, "Enter the Book ID to delete: ")
	if !ok {
		return
	}
	if err := s.cat.Remove(id); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Book deleted successfully!")
}

// report prints the user-facing message for a catalog error
func (s *Shell) report(err error) {
	slog.Debug("Operation rejected", "err", err)
	fmt.Fprintln(s.out, s.message(err))
}

func (s *Shell) message(err error) string {
	var fe validation.FieldErrors
	switch {
	case errors.Is(err, catalog.ErrDuplicateID):
		return "Book ID already exists. Please use a unique ID."
	case errors.As(err, &fe):
		names := fe.Fields()
		for i, n := range names {
			names[i] = s.title.String(n)
		}
		return strings.Join(names, " and ") + " cannot be empty."
	case errors.Is(err, catalog.ErrInvalidStatus):
		return "Availability status must be either 'Available' or 'Checked Out'."
	case errors.Is(err, catalog.ErrNotFound):
		return "No book found with the provided ID."
	case errors.Is(err, catalog.ErrMalformedID):
		return "Invalid input. Book ID should be an integer."
	default:
		return "Error: " + err.Error()
	}
}
