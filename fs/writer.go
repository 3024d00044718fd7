// Package fs provides file-based storage for scraped documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/docscrape"
)

// FormatPage formats a page with YAML frontmatter.
// The title and url lines are omitted when empty; scrapeDate is always set.
func FormatPage(page *docscrape.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	if page.Title != "" {
		b.WriteString("title: ")
		b.WriteString(strconv.Quote(page.Title))
		b.WriteString("\n")
	}
	if page.SourceURL != "" {
		b.WriteString("url: ")
		b.WriteString(strconv.Quote(page.SourceURL))
		b.WriteString("\n")
	}
	b.WriteString("scrapeDate: ")
	b.WriteString(page.ScrapedAt.UTC().Format(time.RFC3339))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// Ensure Writer implements docscrape.PageWriter at compile time.
var _ docscrape.PageWriter = (*Writer)(nil)

// Writer writes pages as markdown files.
type Writer struct {
	now func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithClock sets the clock used to stamp scrapeDate.
// Defaults to time.Now.
func WithClock(now func() time.Time) WriterOption {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WritePage stamps the page with the current UTC time and writes it to
// dir/page.Filename, overwriting any existing file.
func (w *Writer) WritePage(ctx context.Context, dir string, page *docscrape.Page) (string, error) {
	if page.Filename == "" || filepath.Base(page.Filename) != page.Filename {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid page filename %q", page.Filename)
	}

	page.ScrapedAt = w.now().UTC()

	fullPath := filepath.Join(dir, page.Filename)
	if err := os.WriteFile(fullPath, []byte(FormatPage(page)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
