package docscrape

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (html string, err error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	Title       string
	Description string

	// ContentHTML is the main content with boilerplate removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// LinkExtractor lists the absolute URLs an HTML page links to.
type LinkExtractor interface {
	// ExtractLinks resolves every anchor in html against baseURL.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain of
	// rawURL. Returns an error if rawURL has no domain or ctx is canceled.
	Wait(ctx context.Context, rawURL string) error
}
