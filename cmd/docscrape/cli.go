package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docscrape"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" optional:"" help:"Documentation start URL, e.g. https://docs.example.com"`

	Engine string `short:"e" default:"firecrawl" enum:"firecrawl,local" help:"Extraction engine: firecrawl (remote API) or local (plain HTTP)"`
	APIURL string `name:"api-url" env:"FIRECRAWL_API_URL" default:"${default_api_url}" help:"Firecrawl API base URL"`
	APIKey string `name:"api-key" env:"FIRECRAWL_API_KEY" help:"Firecrawl API key"`

	Render       bool   `help:"Render pages in headless Chrome (local engine only)"`
	RecycleAfter int64  `name:"recycle-after" default:"${default_recycle_after}" help:"Pages rendered before Chrome is restarted (with --render)"`
	Extractor    string `default:"trafilatura" enum:"trafilatura,readability" help:"Main content extractor for the local engine"`

	Output      string        `short:"o" default:"." help:"Base directory for the per-domain output directory"`
	Concurrency int           `short:"c" default:"1" help:"Pages processed at once"`
	Rate        float64       `default:"0" help:"Maximum engine requests per second (0 for unlimited)"`
	Timeout     time.Duration `short:"t" default:"${default_timeout}" help:"Timeout per engine request"`

	OnlyMainContent bool `default:"true" negatable:"" help:"Strip navigation, headers and footers"`
	WaitFor         int  `name:"wait-for" help:"Milliseconds the engine waits before capturing a page"`
	BlockAds        bool `name:"block-ads" help:"Ask the engine to block ads and cookie banners"`
	Mobile          bool `help:"Render pages with a mobile viewport"`

	Journal string `placeholder:"PATH" help:"Record the run in a SQLite journal at PATH"`
	Preview bool   `short:"p" help:"List the pages that would be scraped without writing files"`
	Debug   bool   `help:"Log every engine request and file write to stderr"`
}

// Config converts the parsed flags into a Config.
func (c *CLI) Config() *Config {
	return &Config{
		URL:             c.URL,
		Engine:          c.Engine,
		APIURL:          c.APIURL,
		APIKey:          c.APIKey,
		Render:          c.Render,
		RecycleAfter:    c.RecycleAfter,
		Extractor:       c.Extractor,
		OutputDir:       c.Output,
		Concurrency:     c.Concurrency,
		Rate:            c.Rate,
		Timeout:         c.Timeout,
		OnlyMainContent: c.OnlyMainContent,
		WaitFor:         c.WaitFor,
		BlockAds:        c.BlockAds,
		Mobile:          c.Mobile,
		JournalPath:     c.Journal,
		Preview:         c.Preview,
		Debug:           c.Debug,
	}
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Dirs    docscrape.DirectoryResolver
	Scraper docscrape.Scraper
	Writer  docscrape.PageWriter
	Options *docscrape.ScrapeOptions

	// Journal is nil unless a journal path was given.
	Journal docscrape.Journal

	Concurrency int
}

// CrawlCmd scrapes one documentation site.
type CrawlCmd struct {
	URL     string
	Preview bool
}
