package docscrape

import (
	"context"
	"time"
)

// Run is one crawl of a documentation site as recorded in the journal.
type Run struct {
	ID         string    `json:"id"`
	Target     string    `json:"target"`
	Domain     string    `json:"domain"`
	OutputDir  string    `json:"outputDir"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Saved      int       `json:"saved"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Target == "" {
		return Errorf(EINVALID, "run target required")
	}
	return nil
}

// PageRecord is the journal entry for one processed link.
type PageRecord struct {
	ID          string     `json:"id"`
	RunID       string     `json:"runId"`
	URL         string     `json:"url"`
	FilePath    string     `json:"filePath"`
	Status      PageStatus `json:"status"`
	ContentHash string     `json:"contentHash"`
	Error       string     `json:"error"`
	Warning     string     `json:"warning"`
	RecordedAt  time.Time  `json:"recordedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (p *PageRecord) Validate() error {
	if p.RunID == "" {
		return Errorf(EINVALID, "page record run ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page record URL required")
	}
	return nil
}

// Journal records crawl runs and their per-page outcomes.
type Journal interface {
	// CreateRun assigns an ID and start time to run and stores it.
	CreateRun(ctx context.Context, run *Run) error

	// FinishRun stores the finish time and counters of run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *Run) error

	// RecordPage stores the outcome of one page.
	RecordPage(ctx context.Context, rec *PageRecord) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindPages retrieves the page records of a run in insertion order.
	FindPages(ctx context.Context, runID string) ([]*PageRecord, error)
}
