package crawl

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docscrape"
)

// Warning text reported when the engine returns no markdown for a page.
const noMarkdownWarning = "no markdown content received"

// PageOutcome is the result of processing one discovered link.
type PageOutcome struct {
	URL    string
	Status docscrape.PageStatus

	// Path is the written file, set only when Status is StatusSaved.
	Path string

	// ContentHash is the xxhash of the written markdown body.
	ContentHash string

	// Warnings are diagnostics that did not stop the page from completing.
	Warnings []string

	// Err is set only when Status is StatusFailed. Its code is EFETCH or EWRITE.
	Err error
}

// Persister fetches one page as markdown and writes it to disk.
type Persister struct {
	Scraper docscrape.Scraper
	Writer  docscrape.PageWriter
	Options *docscrape.ScrapeOptions
}

// Persist fetches link as markdown and writes it into dir.
//
// A response without markdown writes nothing and completes as StatusSkipped
// with a warning. Engine warnings are attached to the outcome without
// affecting its status.
func (p *Persister) Persist(ctx context.Context, link, dir string) PageOutcome {
	outcome := PageOutcome{URL: link}

	res, err := p.Scraper.Scrape(ctx, link, []docscrape.Format{docscrape.FormatMarkdown}, p.Options)
	if err != nil {
		outcome.Status = docscrape.StatusFailed
		outcome.Err = docscrape.WrapError(docscrape.EFETCH, err, "failed to fetch %s", link)
		return outcome
	}
	if res == nil {
		outcome.Status = docscrape.StatusFailed
		outcome.Err = docscrape.Errorf(docscrape.EFETCH, "no response for %s", link)
		return outcome
	}

	if res.HasMarkdown() {
		page := &docscrape.Page{
			Filename:  Filename(res.Metadata.Title, link),
			Title:     res.Metadata.Title,
			SourceURL: res.Metadata.SourceURL,
			Content:   *res.Markdown,
		}
		path, err := p.Writer.WritePage(ctx, dir, page)
		if err != nil {
			outcome.Status = docscrape.StatusFailed
			outcome.Err = docscrape.WrapError(docscrape.EWRITE, err, "failed to write %s", page.Filename)
			return outcome
		}
		outcome.Status = docscrape.StatusSaved
		outcome.Path = path
		outcome.ContentHash = computeHash(page.Content)
	} else {
		outcome.Status = docscrape.StatusSkipped
		outcome.Warnings = append(outcome.Warnings, noMarkdownWarning)
	}

	if res.Metadata.StatusCode >= 400 {
		outcome.Warnings = append(outcome.Warnings, fmt.Sprintf("source returned HTTP %d", res.Metadata.StatusCode))
	}
	if res.Metadata.Error != "" {
		outcome.Warnings = append(outcome.Warnings, "engine error: "+res.Metadata.Error)
	}
	if res.Warning != "" {
		outcome.Warnings = append(outcome.Warnings, res.Warning)
	}

	return outcome
}

// Filename returns the output file name for a page: the sanitized title
// when there is one, otherwise "page_" followed by the sanitized URL.
func Filename(title, link string) string {
	if title != "" {
		return docscrape.SanitizeFilename(title) + ".md"
	}
	return "page_" + docscrape.SanitizeFilename(link) + ".md"
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
