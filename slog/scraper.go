package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingScraper implements docscrape.Scraper.
var _ docscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   docscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next docscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string, formats []docscrape.Format, opts *docscrape.ScrapeOptions) (res *docscrape.ScrapeResult, err error) {
	defer func(begin time.Time) {
		var links, bytes int
		var title string
		if res != nil {
			links = len(res.Links)
			if res.Markdown != nil {
				bytes = len(*res.Markdown)
			}
			title = res.Metadata.Title
		}
		s.logger.Info("scrape",
			"url", url,
			"formats", formats,
			"title", title,
			"links", links,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url, formats, opts)
}
