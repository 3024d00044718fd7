package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of docscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string, formats []docscrape.Format, opts *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string, formats []docscrape.Format, opts *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url, formats, opts)
}
