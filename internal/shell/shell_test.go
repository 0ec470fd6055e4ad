package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/lehigh-university-libraries/bookshelf/internal/catalog"
	"github.com/lehigh-university-libraries/bookshelf/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cat *catalog.Catalog, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(cat, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	sh.Run(context.Background())
	return out.String()
}

func withDune(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	_, err := cat.Add(1, models.BookInput{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Status: "Available"})
	require.NoError(t, err)
	return cat
}

func TestMenuAndExit(t *testing.T) {
	out := run(t, catalog.New(), "abc", "9", "6")

	assert.Contains(t, out, "----- Library Management System -----")
	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "Please choose a valid option between 1 and 6.")
	assert.True(t, strings.HasSuffix(out, "Exiting system. Goodbye!\n"))
	assert.Equal(t, 3, strings.Count(out, "Enter your choice: "))
}

func TestEndOfInputExits(t *testing.T) {
	var out bytes.Buffer
	sh := New(catalog.New(), strings.NewReader("2\n"), &out)
	sh.Run(context.Background())
	assert.Contains(t, out.String(), "Exiting system. Goodbye!")
}

func TestCancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := New(catalog.New(), strings.NewReader("1\n"), &out)
	sh.Run(ctx)
	assert.Empty(t, out.String())
}

func TestAddBook(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    string
		wantLen int
	}{
		{
			name:    "success",
			lines:   []string{"1", "2", "Emma", "Jane Austen", "Classic", "CHECKED OUT"},
			want:    "Book added successfully!",
			wantLen: 2,
		},
		{
			name:    "malformed id",
			lines:   []string{"1", "two"},
			want:    "Invalid input. Book ID should be an integer.",
			wantLen: 1,
		},
		{
			name:    "duplicate id reported before title",
			lines:   []string{"1", "1"},
			want:    "Book ID already exists. Please use a unique ID.",
			wantLen: 1,
		},
		{
			name:    "empty title",
			lines:   []string{"1", "2", "  "},
			want:    "Title cannot be empty.",
			wantLen: 1,
		},
		{
			name:    "empty author",
			lines:   []string{"1", "2", "Emma", ""},
			want:    "Author cannot be empty.",
			wantLen: 1,
		},
		{
			name:    "invalid status",
			lines:   []string{"1", "2", "Emma", "Jane Austen", "", "Maybe"},
			want:    "Availability status must be either 'Available' or 'Checked Out'.",
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := withDune(t)
			out := run(t, cat, append(tt.lines, "6")...)

			assert.Contains(t, out, tt.want)
			assert.Equal(t, tt.wantLen, cat.Len())
		})
	}

	t.Run("duplicate id skips title prompt", func(t *testing.T) {
		out := run(t, withDune(t), "1", "1", "6")
		assert.NotContains(t, out, "Enter Title: ")
	})
}

func TestViewBooks(t *testing.T) {
	out := run(t, catalog.New(), "2", "6")
	assert.Contains(t, out, "No books in the system.")

	out = run(t, withDune(t), "2", "6")
	assert.Contains(t, out, "----- List of Books -----")
	assert.Contains(t, out, "Book ID: 1, Title: Dune, Author: Frank Herbert, Genre: Science Fiction, Status: Available\n")
}

func TestSearchBook(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"by id", []string{"3", "1", "1"}, "Book found: \nBook ID: 1, Title: Dune"},
		{"by id missing", []string{"3", "1", "5"}, "No book found with the provided ID."},
		{"by id malformed", []string{"3", "1", "x"}, "Invalid input. Book ID should be an integer."},
		{"by title ignores case", []string{"3", "2", "dUnE"}, "Book found: \nBook ID: 1, Title: Dune"},
		{"by title missing", []string{"3", "2", "Emma"}, "No book found with the provided title."},
		{"bad sub choice", []string{"3", "7"}, "Invalid choice. Please select 1 or 2."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, withDune(t), append(tt.lines, "6")...)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestUpdateBook(t *testing.T) {
	t.Run("blank fields kept", func(t *testing.T) {
		cat := withDune(t)
		out := run(t, cat, "4", "1", "", "", "Space Opera", "", "6")

		assert.Contains(t, out, "Leave a field blank if you do not wish to update it.")
		assert.Contains(t, out, "Book details updated successfully!")
		got, _ := cat.FindByID(1)
		assert.Equal(t, models.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Space Opera", Status: models.Available}, got)
	})

	t.Run("invalid status aborts", func(t *testing.T) {
		cat := withDune(t)
		before, _ := cat.FindByID(1)
		out := run(t, cat, "4", "1", "Dune Messiah", "", "", "gone", "6")

		assert.Contains(t, out, "Invalid availability status. Update aborted.")
		after, _ := cat.FindByID(1)
		assert.Equal(t, before, after)
	})

	t.Run("missing id", func(t *testing.T) {
		out := run(t, withDune(t), "4", "8", "6")
		assert.Contains(t, out, "No book found with the provided ID.")
		assert.NotContains(t, out, "Enter new Title: ")
	})
}

func TestDeleteBook(t *testing.T) {
	cat := withDune(t)
	out := run(t, cat, "5", "3", "5", "1", "6")

	assert.Contains(t, out, "No book found with the provided ID.")
	assert.Contains(t, out, "Book deleted successfully!")
	assert.Equal(t, 0, cat.Len())
}

func TestLongLineIsAccepted(t *testing.T) {
	title := strings.Repeat("x", 70*1024)
	cat := catalog.New()
	out := run(t, cat, "1", "7", title, "Anonymous", "", "Available", "2", "6")

	assert.Contains(t, out, "Book added successfully!")
	assert.True(t, strings.HasSuffix(out, "Exiting system. Goodbye!\n"))
	got, ok := cat.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, title, got.Title)
}

func TestReadErrorIsReported(t *testing.T) {
	tests := []struct {
		name string
		in   io.Reader
		want string
	}{
		{
			name: "failing reader",
			in:   iotest.ErrReader(errors.New("device gone")),
			want: "Unable to read input: device gone",
		},
		{
			name: "line over the limit",
			in:   strings.NewReader("1\n7\n" + strings.Repeat("x", maxLineLength+1) + "\n6\n"),
			want: "Unable to read input: bufio.Scanner: token too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.New()
			var out bytes.Buffer
			New(cat, tt.in, &out).Run(context.Background())

			assert.Contains(t, out.String(), tt.want)
			assert.True(t, strings.HasSuffix(out.String(), "Exiting system. Goodbye!\n"))
			assert.Equal(t, 0, cat.Len())
		})
	}
}

func TestCancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cat := catalog.New()
	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		New(cat, pr, &out).Run(ctx)
	}()

	// start an add, then cancel while the shell waits for the id
	_, err := pw.Write([]byte("1\n"))
	require.NoError(t, err)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shell did not stop after cancellation")
	}
	assert.Equal(t, 0, cat.Len())
	assert.NotContains(t, out.String(), "Book added successfully!")
}
