package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fwojciec/teibow"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ teibow.RunService = (*RunService)(nil)

// RunService implements teibow.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a completed run.
func (s *RunService) CreateRun(ctx context.Context, run *teibow.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, corpus_path, seed, sample_size, docs_found, docs_used, docs_skipped, sentences, unique_words, table_length, output_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.CorpusPath, run.Seed, run.SampleSize, run.DocsFound, run.DocsUsed,
		run.DocsSkipped, run.Sentences, run.UniqueWords, run.TableLength, run.OutputPath,
		run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*teibow.Run, error) {
	var run teibow.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, corpus_path, seed, sample_size, docs_found, docs_used, docs_skipped, sentences, unique_words, table_length, output_path, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.CorpusPath, &run.Seed, &run.SampleSize, &run.DocsFound,
		&run.DocsUsed, &run.DocsSkipped, &run.Sentences, &run.UniqueWords,
		&run.TableLength, &run.OutputPath, &createdAt)

	if err == sql.ErrNoRows {
		return nil, teibow.Errorf(teibow.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &run, nil
}

// FindRuns retrieves all recorded runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*teibow.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, corpus_path, seed, sample_size, docs_found, docs_used, docs_skipped, sentences, unique_words, table_length, output_path, created_at
		FROM runs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []*teibow.Run{}
	for rows.Next() {
		var run teibow.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.CorpusPath, &run.Seed, &run.SampleSize,
			&run.DocsFound, &run.DocsUsed, &run.DocsSkipped, &run.Sentences,
			&run.UniqueWords, &run.TableLength, &run.OutputPath, &createdAt); err != nil {
			return nil, err
		}
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run; its document records cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return teibow.Errorf(teibow.ENOTFOUND, "run not found")
	}

	return nil
}
