package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/mock"
	dsslog "github.com/fwojciec/docscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs title, links and markdown size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		md := "# Intro"
		inner := &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string, _ []docscrape.Format, _ *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
				return &docscrape.ScrapeResult{
					Markdown: &md,
					Links:    []string{"https://docs.example.com/a"},
					Metadata: docscrape.Metadata{Title: "Intro"},
				}, nil
			},
		}

		s := dsslog.NewLoggingScraper(inner, logger)
		res, err := s.Scrape(context.Background(), "https://docs.example.com", []docscrape.Format{docscrape.FormatMarkdown}, nil)

		require.NoError(t, err)
		assert.Equal(t, "# Intro", *res.Markdown)
		output := buf.String()
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "url=https://docs.example.com")
		assert.Contains(t, output, "title=Intro")
		assert.Contains(t, output, "links=1")
		assert.Contains(t, output, "bytes=7")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error without result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(_ context.Context, _ string, _ []docscrape.Format, _ *docscrape.ScrapeOptions) (*docscrape.ScrapeResult, error) {
				return nil, errors.New("API request failed with status 500")
			},
		}

		s := dsslog.NewLoggingScraper(inner, logger)
		_, err := s.Scrape(context.Background(), "https://docs.example.com", nil, nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "links=0")
		assert.Contains(t, output, `err="API request failed with status 500"`)
	})
}

func TestLoggingPageWriter_WritePage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.PageWriter{
		WritePageFn: func(_ context.Context, dir string, page *docscrape.Page) (string, error) {
			return dir + "/" + page.Filename, nil
		},
	}

	w := dsslog.NewLoggingPageWriter(inner, logger)
	path, err := w.WritePage(context.Background(), "/out", &docscrape.Page{Filename: "Intro.md", Content: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "/out/Intro.md", path)
	output := buf.String()
	assert.Contains(t, output, `msg="write page"`)
	assert.Contains(t, output, "path=/out/Intro.md")
	assert.Contains(t, output, "bytes=5")
}

func TestLoggingJournal(t *testing.T) {
	t.Parallel()

	t.Run("logs writes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Journal{
			CreateRunFn: func(_ context.Context, run *docscrape.Run) error {
				run.ID = "run-1"
				return nil
			},
			RecordPageFn: func(_ context.Context, _ *docscrape.PageRecord) error {
				return errors.New("disk full")
			},
			FinishRunFn: func(_ context.Context, _ *docscrape.Run) error { return nil },
		}
		j := dsslog.NewLoggingJournal(inner, logger)
		ctx := context.Background()

		run := &docscrape.Run{Target: "https://docs.example.com"}
		require.NoError(t, j.CreateRun(ctx, run))
		require.Error(t, j.RecordPage(ctx, &docscrape.PageRecord{RunID: run.ID, URL: "https://docs.example.com/a", Status: docscrape.StatusSaved}))
		run.Saved = 1
		require.NoError(t, j.FinishRun(ctx, run))

		output := buf.String()
		assert.Contains(t, output, `msg="journal create run" id=run-1`)
		assert.Contains(t, output, `msg="journal record page" url=https://docs.example.com/a status=saved`)
		assert.Contains(t, output, `err="disk full"`)
		assert.Contains(t, output, "saved=1")
	})

	t.Run("delegates lookups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Journal{
			FindRunByIDFn: func(_ context.Context, id string) (*docscrape.Run, error) {
				return &docscrape.Run{ID: id}, nil
			},
			FindPagesFn: func(_ context.Context, _ string) ([]*docscrape.PageRecord, error) {
				return []*docscrape.PageRecord{{URL: "https://docs.example.com/a"}}, nil
			},
		}
		j := dsslog.NewLoggingJournal(inner, logger)

		run, err := j.FindRunByID(context.Background(), "run-1")
		require.NoError(t, err)
		assert.Equal(t, "run-1", run.ID)

		recs, err := j.FindPages(context.Background(), "run-1")
		require.NoError(t, err)
		assert.Len(t, recs, 1)
		assert.Empty(t, buf.String())
	})
}
