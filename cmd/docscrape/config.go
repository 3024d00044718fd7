package main

import (
	"time"

	"github.com/fwojciec/docscrape"
)

// Engine names.
const (
	EngineFirecrawl = "firecrawl"
	EngineLocal     = "local"
)

// Extractor names.
const (
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
)

// Config is the validated configuration of one run.
type Config struct {
	URL    string
	Engine string
	APIURL string
	APIKey string

	Render       bool
	RecycleAfter int64
	Extractor    string

	OutputDir   string
	Concurrency int
	Rate        float64
	Timeout     time.Duration

	OnlyMainContent bool
	WaitFor         int
	BlockAds        bool
	Mobile          bool

	JournalPath string
	Preview     bool
	Debug       bool
}

// Validate returns an ECONFIG error describing the first invalid setting.
func (c *Config) Validate() error {
	if c.URL == "" {
		return docscrape.Errorf(docscrape.ECONFIG, "start URL required, usage: docscrape <url>")
	}
	if _, err := docscrape.Domain(c.URL); err != nil {
		return docscrape.WrapError(docscrape.ECONFIG, err, "start URL must be absolute, e.g. https://docs.example.com")
	}
	switch c.Engine {
	case EngineFirecrawl:
		if c.APIKey == "" {
			return docscrape.Errorf(docscrape.ECONFIG, "FIRECRAWL_API_KEY must be set in the environment or .env file")
		}
		if c.APIURL == "" {
			return docscrape.Errorf(docscrape.ECONFIG, "FIRECRAWL_API_URL must not be empty")
		}
	case EngineLocal:
	default:
		return docscrape.Errorf(docscrape.ECONFIG, "unknown engine %q", c.Engine)
	}
	if c.Render && c.Engine != EngineLocal {
		return docscrape.Errorf(docscrape.ECONFIG, "--render requires the local engine")
	}
	if c.Render && c.RecycleAfter < 1 {
		return docscrape.Errorf(docscrape.ECONFIG, "recycle-after must be at least 1, got %d", c.RecycleAfter)
	}
	switch c.Extractor {
	case "", ExtractorTrafilatura, ExtractorReadability:
	default:
		return docscrape.Errorf(docscrape.ECONFIG, "unknown extractor %q", c.Extractor)
	}
	if c.Concurrency < 1 {
		return docscrape.Errorf(docscrape.ECONFIG, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Rate < 0 {
		return docscrape.Errorf(docscrape.ECONFIG, "rate must not be negative, got %g", c.Rate)
	}
	if c.Timeout <= 0 {
		return docscrape.Errorf(docscrape.ECONFIG, "timeout must be positive, got %s", c.Timeout)
	}
	if c.WaitFor < 0 {
		return docscrape.Errorf(docscrape.ECONFIG, "wait-for must not be negative, got %d", c.WaitFor)
	}
	return nil
}

// ScrapeOptions returns the engine options shared by every request of the run.
func (c *Config) ScrapeOptions() *docscrape.ScrapeOptions {
	onlyMain := c.OnlyMainContent
	return &docscrape.ScrapeOptions{
		OnlyMainContent: &onlyMain,
		WaitFor:         c.WaitFor,
		BlockAds:        c.BlockAds,
		Mobile:          c.Mobile,
		Timeout:         int(c.Timeout.Milliseconds()),
	}
}
