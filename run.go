package teibow

import (
	"context"
	"time"
)

// Run records one bag-of-words build: where the corpus came from, how it
// was sampled, and what the resulting table looked like.
type Run struct {
	ID          string    `json:"id"`
	CorpusPath  string    `json:"corpusPath"`
	Seed        int64     `json:"seed"`
	SampleSize  int       `json:"sampleSize"`
	DocsFound   int       `json:"docsFound"`
	DocsUsed    int       `json:"docsUsed"`
	DocsSkipped int       `json:"docsSkipped"`
	Sentences   int       `json:"sentences"`
	UniqueWords int       `json:"uniqueWords"`
	TableLength int       `json:"tableLength"`
	OutputPath  string    `json:"outputPath"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.CorpusPath == "" {
		return Errorf(EINVALID, "run corpus path required")
	}
	if r.OutputPath == "" {
		return Errorf(EINVALID, "run output path required")
	}
	return nil
}

// RunService represents a service for managing run history.
type RunService interface {
	// CreateRun records a completed run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves all recorded runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)

	// DeleteRun permanently removes a run and its document records.
	// Returns ENOTFOUND if run does not exist.
	DeleteRun(ctx context.Context, id string) error
}
