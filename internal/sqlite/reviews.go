// File path: internal/sqlite/reviews.go
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

// CreateReview inserts a review row. The referenced MOP must exist.
func (s *Store) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	if s == nil || s.db == nil {
		return model.Review{}, errors.New("sqlite store not initialised")
	}
	if strings.TrimSpace(review.MOPID) == "" {
		return model.Review{}, common.InvalidInputf("review mop id required")
	}
	if _, err := s.MOPByID(ctx, review.MOPID); err != nil {
		return model.Review{}, err
	}
	if strings.TrimSpace(review.ID) == "" {
		review.ID = uuid.NewString()
	}
	if review.Status == "" {
		review.Status = model.ReviewPending
	}
	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	review.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reviews (id, mop_id, reviewer_id, status, comments, created_at, updated_at)
                VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ID, review.MOPID, review.ReviewerID, review.Status, review.Comments, review.CreatedAt, review.UpdatedAt)
	if err != nil {
		return model.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return review, nil
}

// ReviewByID retrieves a single review.
func (s *Store) ReviewByID(ctx context.Context, id string) (model.Review, error) {
	if s == nil || s.db == nil {
		return model.Review{}, errors.New("sqlite store not initialised")
	}
	var review model.Review
	err := s.db.GetContext(ctx, &review, `SELECT * FROM reviews WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Review{}, common.NotFoundf("review %s not found", id)
	}
	if err != nil {
		return model.Review{}, fmt.Errorf("select review: %w", err)
	}
	return review, nil
}

// ReviewsForMOP returns a MOP's reviews in creation order.
func (s *Store) ReviewsForMOP(ctx context.Context, mopID string) ([]model.Review, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	reviews := []model.Review{}
	if err := s.db.SelectContext(ctx, &reviews,
		`SELECT * FROM reviews WHERE mop_id = ? ORDER BY created_at, id`, mopID); err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	return reviews, nil
}

// PendingReviews returns all reviews still awaiting a verdict, newest first.
func (s *Store) PendingReviews(ctx context.Context) ([]model.Review, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	reviews := []model.Review{}
	if err := s.db.SelectContext(ctx, &reviews,
		`SELECT * FROM reviews WHERE status = ? ORDER BY created_at DESC, id`, model.ReviewPending); err != nil {
		return nil, fmt.Errorf("select pending reviews: %w", err)
	}
	return reviews, nil
}

// UpdateReview applies non-empty status and comment changes.
func (s *Store) UpdateReview(ctx context.Context, id string, status, comments string) (model.Review, error) {
	if s == nil || s.db == nil {
		return model.Review{}, errors.New("sqlite store not initialised")
	}
	review, err := s.ReviewByID(ctx, id)
	if err != nil {
		return model.Review{}, err
	}
	if trimmed := strings.TrimSpace(status); trimmed != "" {
		review.Status = trimmed
	}
	if trimmed := strings.TrimSpace(comments); trimmed != "" {
		review.Comments = trimmed
	}
	review.UpdatedAt = time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`UPDATE reviews SET status = ?, comments = ?, updated_at = ? WHERE id = ?`,
		review.Status, review.Comments, review.UpdatedAt, review.ID)
	if err != nil {
		return model.Review{}, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

// DeleteReview removes a single review.
func (s *Store) DeleteReview(ctx context.Context, id string) error {
	if s == nil || s.db == nil {
		return errors.New("sqlite store not initialised")
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return requireRow(res, "review", id)
}
