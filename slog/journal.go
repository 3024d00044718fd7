package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingJournal implements docscrape.Journal.
var _ docscrape.Journal = (*LoggingJournal)(nil)

// LoggingJournal wraps a Journal with debug logging of its writes.
// Lookups are delegated without logging.
type LoggingJournal struct {
	next   docscrape.Journal
	logger *slog.Logger
}

// NewLoggingJournal creates a new LoggingJournal.
func NewLoggingJournal(next docscrape.Journal, logger *slog.Logger) *LoggingJournal {
	return &LoggingJournal{next: next, logger: logger}
}

// CreateRun delegates to the wrapped journal and logs the operation.
func (j *LoggingJournal) CreateRun(ctx context.Context, run *docscrape.Run) (err error) {
	defer func(begin time.Time) {
		j.logger.Info("journal create run",
			"id", run.ID,
			"target", run.Target,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.CreateRun(ctx, run)
}

// FinishRun delegates to the wrapped journal and logs the operation.
func (j *LoggingJournal) FinishRun(ctx context.Context, run *docscrape.Run) (err error) {
	defer func(begin time.Time) {
		j.logger.Info("journal finish run",
			"id", run.ID,
			"saved", run.Saved,
			"skipped", run.Skipped,
			"failed", run.Failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.FinishRun(ctx, run)
}

// RecordPage delegates to the wrapped journal and logs the operation.
func (j *LoggingJournal) RecordPage(ctx context.Context, rec *docscrape.PageRecord) (err error) {
	defer func(begin time.Time) {
		j.logger.Info("journal record page",
			"url", rec.URL,
			"status", rec.Status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return j.next.RecordPage(ctx, rec)
}

// FindRunByID delegates to the wrapped journal.
func (j *LoggingJournal) FindRunByID(ctx context.Context, id string) (*docscrape.Run, error) {
	return j.next.FindRunByID(ctx, id)
}

// FindPages delegates to the wrapped journal.
func (j *LoggingJournal) FindPages(ctx context.Context, runID string) ([]*docscrape.PageRecord, error) {
	return j.next.FindPages(ctx, runID)
}
