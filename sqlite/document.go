package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/teibow"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ teibow.DocumentService = (*DocumentService)(nil)

// DocumentService implements teibow.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument records a processed document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *teibow.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ExtractedAt.IsZero() {
		doc.ExtractedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, run_id, path, title, content_hash, sentences, words, position, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.RunID, doc.Path, doc.Title, doc.ContentHash, doc.Sentences,
		doc.Words, doc.Position, doc.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindDocumentsByRun retrieves the documents processed by a run, ordered
// by position.
func (s *DocumentService) FindDocumentsByRun(ctx context.Context, runID string) ([]*teibow.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, path, title, content_hash, sentences, words, position, extracted_at
		FROM documents
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*teibow.Document{}
	for rows.Next() {
		var doc teibow.Document
		var extractedAt string
		if err := rows.Scan(&doc.ID, &doc.RunID, &doc.Path, &doc.Title, &doc.ContentHash,
			&doc.Sentences, &doc.Words, &doc.Position, &extractedAt); err != nil {
			return nil, err
		}
		doc.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
		}
		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
