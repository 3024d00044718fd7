package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/docscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docscrape.Journal = (*JournalService)(nil)

// JournalService implements docscrape.Journal using SQLite.
type JournalService struct {
	db *DB
}

// NewJournalService creates a new JournalService.
func NewJournalService(db *DB) *JournalService {
	return &JournalService{db: db}
}

// CreateRun creates a new run.
func (s *JournalService) CreateRun(ctx context.Context, run *docscrape.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, target, domain, output_dir, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Target, run.Domain, run.OutputDir, run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun stores the finish time and counters of a run. A zero
// FinishedAt is set to the current time.
func (s *JournalService) FinishRun(ctx context.Context, run *docscrape.Run) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}
	run.FinishedAt = run.FinishedAt.UTC().Truncate(time.Second)

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, saved = ?, skipped = ?, failed = ?
		WHERE id = ?
	`, formatOptionalRFC3339(run.FinishedAt), run.Saved, run.Skipped, run.Failed, run.ID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return docscrape.Errorf(docscrape.ENOTFOUND, "run not found")
	}
	return nil
}

// RecordPage stores the outcome of one page.
func (s *JournalService) RecordPage(ctx context.Context, rec *docscrape.PageRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.RecordedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, run_id, url, file_path, status, content_hash, error, warning, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.RunID, rec.URL, rec.FilePath, string(rec.Status), rec.ContentHash,
		rec.Error, rec.Warning, rec.RecordedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *JournalService) FindRunByID(ctx context.Context, id string) (*docscrape.Run, error) {
	var run docscrape.Run
	var startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, target, domain, output_dir, started_at, finished_at, saved, skipped, failed
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Target, &run.Domain, &run.OutputDir, &startedAt, &finishedAt,
		&run.Saved, &run.Skipped, &run.Failed)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, docscrape.Errorf(docscrape.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
		return nil, err
	}
	if run.FinishedAt, err = parseOptionalRFC3339(finishedAt, "finished_at"); err != nil {
		return nil, err
	}

	return &run, nil
}

// FindPages retrieves the page records of a run in the order they were recorded.
func (s *JournalService) FindPages(ctx context.Context, runID string) ([]*docscrape.PageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, url, file_path, status, content_hash, error, warning, recorded_at
		FROM pages
		WHERE run_id = ?
		ORDER BY rowid ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*docscrape.PageRecord
	for rows.Next() {
		var rec docscrape.PageRecord
		var status, recordedAt string

		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.URL, &rec.FilePath, &status,
			&rec.ContentHash, &rec.Error, &rec.Warning, &recordedAt); err != nil {
			return nil, err
		}
		rec.Status = docscrape.PageStatus(status)
		if rec.RecordedAt, err = parseRFC3339(recordedAt, "recorded_at"); err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
