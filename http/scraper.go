package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.Scraper = (*Scraper)(nil)

// Scraper is a docscrape.Scraper that does all the work locally: it fetches
// the page over HTTP, lists its links, extracts the main content, and
// converts it to markdown. It needs no API key.
//
// Options that only a rendering engine can honor (WaitFor, Mobile,
// BlockAds, Location, Headers) are ignored.
type Scraper struct {
	fetcher   docscrape.Fetcher
	extractor docscrape.Extractor
	converter docscrape.Converter
	links     docscrape.LinkExtractor
	limiter   docscrape.DomainLimiter
}

// ScraperOption configures a Scraper.
type ScraperOption func(*Scraper)

// WithRateLimit limits requests to rps per second for each domain.
// A value of zero or less disables limiting.
func WithRateLimit(rps float64) ScraperOption {
	return func(s *Scraper) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = NewDomainLimiter(rps)
	}
}

// WithLimiter sets the limiter consulted before every fetch.
func WithLimiter(l docscrape.DomainLimiter) ScraperOption {
	return func(s *Scraper) {
		s.limiter = l
	}
}

// NewScraper creates a Scraper from its collaborators.
func NewScraper(
	fetcher docscrape.Fetcher,
	extractor docscrape.Extractor,
	converter docscrape.Converter,
	links docscrape.LinkExtractor,
	opts ...ScraperOption,
) *Scraper {
	s := &Scraper{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		links:     links,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape fetches url once and produces the requested formats from it.
//
// A page whose main content converts to blank markdown yields a result
// without markdown. Failure to extract the main content falls back to
// converting the whole document and is reported as a warning.
func (s *Scraper) Scrape(ctx context.Context, url string, formats []docscrape.Format, opts *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
	if opts != nil && opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.Timeout)*time.Millisecond)
		defer cancel()
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, url); err != nil {
			return nil, err
		}
	}

	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result := &docscrape.ScrapeResult{
		Metadata: docscrape.Metadata{SourceURL: url},
	}

	if docscrape.HasFormat(formats, docscrape.FormatLinks) {
		links, err := s.links.ExtractLinks(html, url)
		if err != nil {
			return nil, fmt.Errorf("extract links: %w", err)
		}
		result.Links = links
	}

	if docscrape.HasFormat(formats, docscrape.FormatMarkdown) {
		if err := s.markdown(html, opts, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// markdown fills the title, description and markdown of result.
func (s *Scraper) markdown(html string, opts *docscrape.ScrapeOptions, result *docscrape.ScrapeResult) error {
	content := html
	extracted, err := s.extractor.Extract(html)
	if err != nil {
		result.Warning = "main content extraction failed: " + err.Error()
	} else {
		result.Metadata.Title = extracted.Title
		result.Metadata.Description = extracted.Description
		if mainContentOnly(opts) && strings.TrimSpace(extracted.ContentHTML) != "" {
			content = extracted.ContentHTML
		}
	}

	if strings.TrimSpace(content) == "" {
		return nil
	}

	md, err := s.converter.Convert(content)
	if err != nil {
		return fmt.Errorf("convert to markdown: %w", err)
	}
	if strings.TrimSpace(md) == "" {
		return nil
	}
	result.Markdown = &md
	return nil
}

// mainContentOnly reports whether boilerplate should be stripped. It
// defaults to true, matching the remote engine.
func mainContentOnly(opts *docscrape.ScrapeOptions) bool {
	if opts == nil || opts.OnlyMainContent == nil {
		return true
	}
	return *opts.OnlyMainContent
}
