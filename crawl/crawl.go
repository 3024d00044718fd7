// Package crawl provides documentation crawling orchestration.
// It coordinates output directory resolution, link discovery, and the
// per-page fetch and write of every discovered link.
package crawl

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/docscrape"
	"golang.org/x/sync/errgroup"
)

// Crawler orchestrates the crawl of one documentation site.
type Crawler struct {
	Dirs    docscrape.DirectoryResolver
	Scraper docscrape.Scraper
	Writer  docscrape.PageWriter
	Options *docscrape.ScrapeOptions

	// Journal, if set, records the run and every page outcome.
	// Journal errors are reported as warnings and never fail the run.
	Journal docscrape.Journal

	// Concurrency is the number of pages processed at once.
	// Values below 2 process pages strictly one after another.
	Concurrency int
}

// Result holds the outcome of a crawl.
type Result struct {
	RunID     string
	OutputDir string
	Links     []string
	Pages     []PageOutcome
	Saved     int
	Skipped   int
	Failed    int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressDirectory ProgressType = iota
	ProgressDiscovered
	ProgressSaved
	ProgressSkipped
	ProgressWarning
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Path      string
	Completed int
	Total     int
	Warning   string
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run crawls the site at targetURL.
//
// Directory resolution and link discovery failures abort the run and are
// returned as errors. Failures of individual pages are recorded in
// Result.Pages and never make Run fail.
func (c *Crawler) Run(ctx context.Context, targetURL string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	dir, err := c.Dirs.ResolveDir(targetURL)
	if err != nil {
		if docscrape.ErrorCode(err) == "" {
			err = docscrape.WrapError(docscrape.EDIRECTORY, err, "failed to create output directory")
		}
		return nil, err
	}
	progress(ProgressEvent{Type: ProgressDirectory, Path: dir})

	discoverer := &Discoverer{Scraper: c.Scraper, Options: c.Options}
	links, err := discoverer.Discover(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	progress(ProgressEvent{Type: ProgressDiscovered, Total: len(links)})

	result := &Result{
		OutputDir: dir,
		Links:     links,
	}

	run := c.startRun(ctx, targetURL, dir, progress)
	if run != nil {
		result.RunID = run.ID
	}

	persister := &Persister{Scraper: c.Scraper, Writer: c.Writer, Options: c.Options}

	// report is called once per page, serialized, in completion order.
	report := func(outcome PageOutcome) {
		result.Pages = append(result.Pages, outcome)
		switch outcome.Status {
		case docscrape.StatusSaved:
			result.Saved++
			progress(ProgressEvent{Type: ProgressSaved, URL: outcome.URL, Path: outcome.Path, Completed: len(result.Pages), Total: len(links)})
		case docscrape.StatusSkipped:
			result.Skipped++
			progress(ProgressEvent{Type: ProgressSkipped, URL: outcome.URL, Completed: len(result.Pages), Total: len(links)})
		default:
			result.Failed++
			progress(ProgressEvent{Type: ProgressFailed, URL: outcome.URL, Error: outcome.Err, Completed: len(result.Pages), Total: len(links)})
		}
		for _, w := range outcome.Warnings {
			if w == noMarkdownWarning {
				continue
			}
			progress(ProgressEvent{Type: ProgressWarning, URL: outcome.URL, Warning: w})
		}
		c.recordPage(ctx, run, outcome, progress)
	}

	c.persistAll(ctx, persister, links, dir, report)

	c.finishRun(ctx, run, result, progress)
	progress(ProgressEvent{Type: ProgressFinished, Completed: len(result.Pages), Total: len(links)})

	return result, nil
}

// persistAll runs the persister for every link and hands each outcome to
// report. Sibling pages keep running when one fails.
func (c *Crawler) persistAll(ctx context.Context, p *Persister, links []string, dir string, report func(PageOutcome)) {
	if c.Concurrency < 2 {
		for _, link := range links {
			report(p.Persist(ctx, link, dir))
		}
		return
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for _, link := range links {
		g.Go(func() error {
			outcome := p.Persist(ctx, link, dir)
			mu.Lock()
			defer mu.Unlock()
			report(outcome)
			return nil
		})
	}
	_ = g.Wait()
}

func (c *Crawler) startRun(ctx context.Context, targetURL, dir string, progress ProgressFunc) *docscrape.Run {
	if c.Journal == nil {
		return nil
	}
	domain, _ := docscrape.Domain(targetURL)
	run := &docscrape.Run{
		Target:    targetURL,
		Domain:    domain,
		OutputDir: dir,
	}
	if err := c.Journal.CreateRun(ctx, run); err != nil {
		progress(ProgressEvent{Type: ProgressWarning, Warning: "journal: " + err.Error()})
		return nil
	}
	return run
}

func (c *Crawler) recordPage(ctx context.Context, run *docscrape.Run, outcome PageOutcome, progress ProgressFunc) {
	if run == nil {
		return
	}
	rec := &docscrape.PageRecord{
		RunID:       run.ID,
		URL:         outcome.URL,
		FilePath:    outcome.Path,
		Status:      outcome.Status,
		ContentHash: outcome.ContentHash,
		Warning:     strings.Join(outcome.Warnings, "; "),
	}
	if outcome.Err != nil {
		rec.Error = outcome.Err.Error()
	}
	if err := c.Journal.RecordPage(ctx, rec); err != nil {
		progress(ProgressEvent{Type: ProgressWarning, URL: outcome.URL, Warning: "journal: " + err.Error()})
	}
}

func (c *Crawler) finishRun(ctx context.Context, run *docscrape.Run, result *Result, progress ProgressFunc) {
	if run == nil {
		return
	}
	run.FinishedAt = time.Now().UTC()
	run.Saved = result.Saved
	run.Skipped = result.Skipped
	run.Failed = result.Failed
	if err := c.Journal.FinishRun(ctx, run); err != nil {
		progress(ProgressEvent{Type: ProgressWarning, Warning: "journal: " + err.Error()})
	}
}
