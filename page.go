package docscrape

import (
	"context"
	"time"
)

// Page is the markdown artifact produced for one discovered link.
type Page struct {
	// Filename is the sanitized file name inside the output directory.
	Filename string

	Title     string
	SourceURL string
	Content   string // Markdown

	// ScrapedAt is stamped by the PageWriter at write time.
	ScrapedAt time.Time
}

// PageStatus is the outcome of processing one discovered link.
type PageStatus string

// Page statuses.
const (
	StatusSaved   PageStatus = "saved"
	StatusSkipped PageStatus = "skipped"
	StatusFailed  PageStatus = "failed"
)

// DirectoryResolver derives and creates the per-domain output directory.
type DirectoryResolver interface {
	// ResolveDir ensures the directory for targetURL's domain exists and
	// returns its path. Calling it again for the same domain succeeds.
	ResolveDir(targetURL string) (string, error)
}

// PageWriter persists pages.
type PageWriter interface {
	// WritePage writes page into dir, replacing any existing file with the
	// same name, and returns the written path.
	WritePage(ctx context.Context, dir string, page *Page) (string, error)
}
