package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingPageWriter implements docscrape.PageWriter.
var _ docscrape.PageWriter = (*LoggingPageWriter)(nil)

// LoggingPageWriter wraps a PageWriter with debug logging.
type LoggingPageWriter struct {
	next   docscrape.PageWriter
	logger *slog.Logger
}

// NewLoggingPageWriter creates a new LoggingPageWriter.
func NewLoggingPageWriter(next docscrape.PageWriter, logger *slog.Logger) *LoggingPageWriter {
	return &LoggingPageWriter{next: next, logger: logger}
}

// WritePage delegates to the wrapped writer and logs the operation.
func (w *LoggingPageWriter) WritePage(ctx context.Context, dir string, page *docscrape.Page) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write page",
			"path", path,
			"file", page.Filename,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePage(ctx, dir, page)
}
