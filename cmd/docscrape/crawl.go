package main

import (
	"fmt"

	"github.com/fwojciec/docscrape/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runCrawl(deps)
}

func (c *CrawlCmd) runPreview(deps *Dependencies) error {
	d := &crawl.Discoverer{Scraper: deps.Scraper, Options: deps.Options}
	links, err := d.Discover(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	for _, link := range links {
		fmt.Fprintln(deps.Stdout, link)
	}
	return nil
}

func (c *CrawlCmd) runCrawl(deps *Dependencies) error {
	crawler := &crawl.Crawler{
		Dirs:        deps.Dirs,
		Scraper:     deps.Scraper,
		Writer:      deps.Writer,
		Options:     deps.Options,
		Journal:     deps.Journal,
		Concurrency: deps.Concurrency,
	}

	result, err := crawler.Run(deps.Ctx, c.URL, func(e crawl.ProgressEvent) {
		printProgress(deps, e)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages, %d skipped, %d failed\n", result.Saved, result.Skipped, result.Failed)
	return nil
}

// printProgress renders one crawl event as a console line.
func printProgress(deps *Dependencies, e crawl.ProgressEvent) {
	switch e.Type {
	case crawl.ProgressDirectory:
		fmt.Fprintf(deps.Stdout, "Saving files to: %s\n", e.Path)
	case crawl.ProgressDiscovered:
		fmt.Fprintf(deps.Stdout, "Found %d documentation pages\n", e.Total)
	case crawl.ProgressSaved:
		fmt.Fprintf(deps.Stdout, "Saved: %s\n", e.Path)
	case crawl.ProgressSkipped:
		fmt.Fprintf(deps.Stderr, "No markdown content received for %s\n", e.URL)
	case crawl.ProgressWarning:
		if e.URL == "" {
			fmt.Fprintf(deps.Stderr, "Warning: %s\n", e.Warning)
			return
		}
		fmt.Fprintf(deps.Stderr, "Warning for %s: %s\n", e.URL, e.Warning)
	case crawl.ProgressFailed:
		fmt.Fprintf(deps.Stderr, "Error processing %s: %v\n", e.URL, e.Error)
	}
}
