package main_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docscrape"
	main "github.com/fwojciec/docscrape/cmd/docscrape"
	"github.com/fwojciec/docscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// Story: Console output
// The crawl reports its directory, the number of pages, every saved file,
// and per-page problems, then summarizes.

func TestCrawlCmd_Run_PrintsConsoleLines(t *testing.T) {
	t.Parallel()

	// Given a site with a saved page, an empty page, a warning and a failure
	scraper := &mock.Scraper{
		ScrapeFn: func(_ context.Context, url string, formats []docscrape.Format, _ *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
			if docscrape.HasFormat(formats, docscrape.FormatLinks) {
				return &docscrape.ScrapeResult{Links: []string{
					"https://docs.example.com/a",
					"https://docs.example.com/empty",
					"https://docs.example.com/broken",
				}}, nil
			}
			switch url {
			case "https://docs.example.com/a":
				return &docscrape.ScrapeResult{
					Markdown: strPtr("# A"),
					Metadata: docscrape.Metadata{Title: "A"},
					Warning:  "render timed out",
				}, nil
			case "https://docs.example.com/empty":
				return &docscrape.ScrapeResult{}, nil
			default:
				return nil, errors.New("connection refused")
			}
		},
	}
	var stdout, stderr bytes.Buffer
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Dirs: &mock.DirectoryResolver{
			ResolveDirFn: func(_ string) (string, error) { return "/out/docs_example_com", nil },
		},
		Scraper: scraper,
		Writer: &mock.PageWriter{
			WritePageFn: func(_ context.Context, dir string, page *docscrape.Page) (string, error) {
				return filepath.Join(dir, page.Filename), nil
			},
		},
		Concurrency: 1,
	}

	// When the crawl runs
	err := (&main.CrawlCmd{URL: "https://docs.example.com"}).Run(deps)

	// Then stdout and stderr carry the expected lines
	require.NoError(t, err)
	assert.Equal(t, "Saving files to: /out/docs_example_com\n"+
		"Found 3 documentation pages\n"+
		"Saved: /out/docs_example_com/A.md\n"+
		"Saved 1 pages, 1 skipped, 1 failed\n", stdout.String())
	assert.Equal(t, "Warning for https://docs.example.com/a: render timed out\n"+
		"No markdown content received for https://docs.example.com/empty\n"+
		"Error processing https://docs.example.com/broken: failed to fetch https://docs.example.com/broken: connection refused\n",
		stderr.String())
}

func TestCrawlCmd_Run_ReturnsFatalErrors(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Dirs: &mock.DirectoryResolver{
			ResolveDirFn: func(_ string) (string, error) {
				return "", docscrape.Errorf(docscrape.EDIRECTORY, "failed to create output directory")
			},
		},
		Scraper: &mock.Scraper{},
		Writer:  &mock.PageWriter{},
	}

	err := (&main.CrawlCmd{URL: "https://docs.example.com"}).Run(deps)

	require.Error(t, err)
	assert.Equal(t, docscrape.EDIRECTORY, docscrape.ErrorCode(err))
	assert.Empty(t, stdout.String())
}

func TestCrawlCmd_Run_PrintsJournalWarnings(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Dirs: &mock.DirectoryResolver{
			ResolveDirFn: func(_ string) (string, error) { return "/out", nil },
		},
		Scraper: &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string, _ []docscrape.Format, _ *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
				return &docscrape.ScrapeResult{}, nil
			},
		},
		Writer: &mock.PageWriter{},
		Journal: &mock.Journal{
			CreateRunFn: func(_ context.Context, _ *docscrape.Run) error {
				return errors.New("disk I/O error")
			},
		},
	}

	err := (&main.CrawlCmd{URL: "https://docs.example.com"}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "Warning: journal: disk I/O error\n", stderr.String())
}

func TestCrawlCmd_Run_PreviewPrintsLinks(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
		Scraper: &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string, _ []docscrape.Format, _ *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
				return &docscrape.ScrapeResult{Links: []string{
					"https://docs.example.com/a#top",
					"https://docs.example.com/a",
					"https://other.com/b",
				}}, nil
			},
		},
	}

	err := (&main.CrawlCmd{URL: "https://docs.example.com", Preview: true}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/a\n", stdout.String())
}
