// File path: internal/sqlite/documents.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
)

// CreateDocument inserts a new document row, assigning an identifier and
// creation time when the caller leaves them zero.
func (s *Store) CreateDocument(ctx context.Context, doc model.Document) (model.Document, error) {
	if s == nil || s.db == nil {
		return model.Document{}, errors.New("sqlite store not initialised")
	}
	if strings.TrimSpace(doc.Filename) == "" {
		return model.Document{}, common.InvalidInputf("document filename required")
	}
	if strings.TrimSpace(doc.ID) == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Status == "" {
		doc.Status = model.DocumentUploaded
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, uploaded_by, filename, object_key, status, metadata_json, extracted_json, created_at)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.UploadedBy, doc.Filename, doc.ObjectKey, doc.Status, doc.MetadataJSON, doc.ExtractedJSON, doc.CreatedAt)
	if err != nil {
		return model.Document{}, fmt.Errorf("insert document: %w", err)
	}
	return doc, nil
}

// DocumentByID retrieves a single document.
func (s *Store) DocumentByID(ctx context.Context, id string) (model.Document, error) {
	if s == nil || s.db == nil {
		return model.Document{}, errors.New("sqlite store not initialised")
	}
	var doc model.Document
	err := s.db.GetContext(ctx, &doc, `SELECT * FROM documents WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Document{}, common.NotFoundf("document %s not found", id)
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("select document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns all documents, newest first.
func (s *Store) ListDocuments(ctx context.Context) ([]model.Document, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	docs := []model.Document{}
	if err := s.db.SelectContext(ctx, &docs, `SELECT * FROM documents ORDER BY created_at DESC, id`); err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	return docs, nil
}

// UpdateDocumentStatus moves a document through the extraction lifecycle.
func (s *Store) UpdateDocumentStatus(ctx context.Context, id, status string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx, `UPDATE documents SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return requireRow(res, "document", id)
}

// UpdateDocumentExtraction stores the extraction payload verbatim and marks
// the document with the given terminal status.
func (s *Store) UpdateDocumentExtraction(ctx context.Context, id, extractedJSON, status string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET extracted_json = ?, status = ? WHERE id = ?`, extractedJSON, status, id)
	if err != nil {
		return fmt.Errorf("update document extraction: %w", err)
	}
	return requireRow(res, "document", id)
}

// DeleteDocument removes a document and, through foreign keys, its MOPs and
// their reviews.
func (s *Store) DeleteDocument(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return requireRow(res, "document", id)
}

// requireRow converts a zero-row update or delete into ErrNotFound.
func requireRow(res sql.Result, kind, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return common.NotFoundf("%s %s not found", kind, id)
	}
	return nil
}
