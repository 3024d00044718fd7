package docscrape

import (
	"context"
	"slices"
)

// Format is a representation of a page the extraction engine can return.
type Format string

// Formats used by the crawler.
const (
	FormatMarkdown Format = "markdown"
	FormatLinks    Format = "links"
)

// Location sets the country and preferred languages the engine uses when
// requesting a page.
type Location struct {
	Country   string
	Languages []string
}

// ScrapeOptions tunes a single extraction request. Zero values leave the
// engine defaults in place.
type ScrapeOptions struct {
	// OnlyMainContent strips navigation, headers and footers when true.
	OnlyMainContent *bool

	IncludeTags []string
	ExcludeTags []string
	Headers     map[string]string

	// WaitFor is the delay in milliseconds before the page is captured.
	WaitFor int

	// Timeout is the engine-side request timeout in milliseconds.
	Timeout int

	Mobile              bool
	SkipTLSVerification bool
	RemoveBase64Images  bool
	BlockAds            bool
	Location            *Location
}

// Metadata describes a scraped page. Every field is optional.
type Metadata struct {
	Title       string
	Description string
	Language    string
	SourceURL   string
	StatusCode  int
	Error       string
}

// ScrapeResult is the engine's answer to one extraction request.
type ScrapeResult struct {
	// Markdown is nil when the engine returned no markdown body at all.
	Markdown *string

	Links    []string
	Metadata Metadata

	// Warning is a non-fatal note from the engine, such as a partial render.
	Warning string
}

// HasMarkdown reports whether the result carries a markdown body.
func (r *ScrapeResult) HasMarkdown() bool {
	return r != nil && r.Markdown != nil
}

// Scraper is the boundary to the remote content-extraction engine.
type Scraper interface {
	// Scrape requests the given formats of the page at url.
	// Returns an error if the transport fails, the engine reports a
	// non-success status, or the response cannot be decoded.
	Scrape(ctx context.Context, url string, formats []Format, opts *ScrapeOptions) (*ScrapeResult, error)
}

// HasFormat reports whether formats contains f.
func HasFormat(formats []Format, f Format) bool {
	return slices.Contains(formats, f)
}
