package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

var _ docscrape.Journal = (*Journal)(nil)

// Journal is a mock implementation of docscrape.Journal.
type Journal struct {
	CreateRunFn   func(ctx context.Context, run *docscrape.Run) error
	FinishRunFn   func(ctx context.Context, run *docscrape.Run) error
	RecordPageFn  func(ctx context.Context, rec *docscrape.PageRecord) error
	FindRunByIDFn func(ctx context.Context, id string) (*docscrape.Run, error)
	FindPagesFn   func(ctx context.Context, runID string) ([]*docscrape.PageRecord, error)
}

func (j *Journal) CreateRun(ctx context.Context, run *docscrape.Run) error {
	return j.CreateRunFn(ctx, run)
}

func (j *Journal) FinishRun(ctx context.Context, run *docscrape.Run) error {
	return j.FinishRunFn(ctx, run)
}

func (j *Journal) RecordPage(ctx context.Context, rec *docscrape.PageRecord) error {
	return j.RecordPageFn(ctx, rec)
}

func (j *Journal) FindRunByID(ctx context.Context, id string) (*docscrape.Run, error) {
	return j.FindRunByIDFn(ctx, id)
}

func (j *Journal) FindPages(ctx context.Context, runID string) ([]*docscrape.PageRecord, error) {
	return j.FindPagesFn(ctx, runID)
}
