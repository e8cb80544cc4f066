// File path: internal/sqlite/mops.go
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

// CreateMOP inserts a new MOP row. The referenced document must exist.
func (s *Store) CreateMOP(ctx context.Context, mop model.MOP) (model.MOP, error) {
	if s == nil || s.db == nil {
		return model.MOP{}, errors.New("sqlite store not initialised")
	}
	if strings.TrimSpace(mop.Title) == "" {
		return model.MOP{}, common.InvalidInputf("mop title required")
	}
	if strings.TrimSpace(mop.DocumentID) == "" {
		return model.MOP{}, common.InvalidInputf("mop document id required")
	}
	if _, err := s.DocumentByID(ctx, mop.DocumentID); err != nil {
		return model.MOP{}, err
	}
	if strings.TrimSpace(mop.ID) == "" {
		mop.ID = uuid.NewString()
	}
	if mop.Status == "" {
		mop.Status = model.MOPDraft
	}
	now := time.Now().UTC()
	if mop.CreatedAt.IsZero() {
		mop.CreatedAt = now
	}
	mop.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mops (id, document_id, title, description, status, created_by, created_at, updated_at)
                VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		mop.ID, mop.DocumentID, mop.Title, mop.Description, mop.Status, mop.CreatedBy, mop.CreatedAt, mop.UpdatedAt)
	if err != nil {
		return model.MOP{}, fmt.Errorf("insert mop: %w", err)
	}
	return mop, nil
}

// MOPByID retrieves a single MOP.
func (s *Store) MOPByID(ctx context.Context, id string) (model.MOP, error) {
	if s == nil || s.db == nil {
		return model.MOP{}, errors.New("sqlite store not initialised")
	}
	var mop model.MOP
	err := s.db.GetContext(ctx, &mop, `SELECT * FROM mops WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MOP{}, common.NotFoundf("mop %s not found", id)
	}
	if err != nil {
		return model.MOP{}, fmt.Errorf("select mop: %w", err)
	}
	return mop, nil
}

// ListMOPs returns all MOPs, newest first.
func (s *Store) ListMOPs(ctx context.Context) ([]model.MOP, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	mops := []model.MOP{}
	if err := s.db.SelectContext(ctx, &mops, `SELECT * FROM mops ORDER BY created_at DESC, id`); err != nil {
		return nil, fmt.Errorf("select mops: %w", err)
	}
	return mops, nil
}

// MOPsForDocument returns the MOPs generated from one document, newest first.
func (s *Store) MOPsForDocument(ctx context.Context, documentID string) ([]model.MOP, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	mops := []model.MOP{}
	if err := s.db.SelectContext(ctx, &mops,
		`SELECT * FROM mops WHERE document_id = ? ORDER BY created_at DESC, id`, documentID); err != nil {
		return nil, fmt.Errorf("select mops for document: %w", err)
	}
	return mops, nil
}

// UpdateMOP applies non-empty title, description, and status changes.
func (s *Store) UpdateMOP(ctx context.Context, id string, title, description, status string) (model.MOP, error) {
	if s == nil || s.db == nil {
		return model.MOP{}, errors.New("sqlite store not initialised")
	}
	mop, err := s.MOPByID(ctx, id)
	if err != nil {
		return model.MOP{}, err
	}
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		mop.Title = trimmed
	}
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		mop.Description = trimmed
	}
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		mop.Status = trimmed
	}
	mop.UpdatedAt = time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`UPDATE mops SET title = ?, description = ?, status = ?, updated_at = ? WHERE id = ?`,
		mop.Title, mop.Description, mop.Status, mop.UpdatedAt, mop.ID)
	if err != nil {
		return model.MOP{}, fmt.Errorf("update mop: %w", err)
	}
	return mop, nil
}

// UpdateMOPStatus sets only the lifecycle status.
func (s *Store) UpdateMOPStatus(ctx context.Context, id, status string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE mops SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update mop status: %w", err)
	}
	return requireRow(res, "mop", id)
}

// DeleteMOP removes a MOP and, through foreign keys, its reviews.
func (s *Store) DeleteMOP(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM mops WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete mop: %w", err)
	}
	return requireRow(res, "mop", id)
}
