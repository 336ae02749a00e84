package teibow

import (
	"context"
	"time"
)

// Document records one corpus file processed during a run.
type Document struct {
	ID          string    `json:"id"`
	RunID       string    `json:"runId"`
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Sentences   int       `json:"sentences"`
	Words       int       `json:"words"`
	Position    int       `json:"position"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.RunID == "" {
		return Errorf(EINVALID, "document run ID required")
	}
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// DocumentService represents a service for managing per-run document records.
type DocumentService interface {
	// CreateDocument records a processed document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentsByRun retrieves the documents processed by a run,
	// ordered by position.
	FindDocumentsByRun(ctx context.Context, runID string) ([]*Document, error)
}
