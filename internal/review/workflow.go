// File path: internal/review/workflow.go
package review

import (
	"context"
	"strings"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
	"github.com/nicodishanthj/mopgen/internal/sqlite"
)

// Workflow drives the MOP approval lifecycle: draft, pending, and the
// terminal approved/rejected verdicts. Terminal states are not locked; a
// later review can re-transition a MOP either way.
type Workflow struct {
	store *sqlite.Store
}

func NewWorkflow(store *sqlite.Store) *Workflow {
	return &Workflow{store: store}
}

// CreateReview records a verdict and mirrors terminal statuses onto the MOP.
// A pending review leaves the MOP untouched.
func (w *Workflow) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	status := strings.TrimSpace(review.Status)
	if status == "" {
		status = model.ReviewPending
	}
	if !validStatus(status) {
		return model.Review{}, common.InvalidInputf("invalid review status %q", review.Status)
	}
	review.Status = status

	created, err := w.store.CreateReview(ctx, review)
	if err != nil {
		return model.Review{}, err
	}
	if err := w.mirrorStatus(ctx, created.MOPID, created.Status); err != nil {
		return model.Review{}, err
	}
	return created, nil
}

// Approve records an approving review, defaulting the comment.
func (w *Workflow) Approve(ctx context.Context, mopID, reviewerID, comments string) (model.Review, error) {
	if strings.TrimSpace(comments) == "" {
		comments = "Approved"
	}
	return w.CreateReview(ctx, model.Review{
		MOPID:      mopID,
		ReviewerID: reviewerID,
		Status:     model.ReviewApproved,
		Comments:   comments,
	})
}

// Reject records a rejecting review, defaulting the comment.
func (w *Workflow) Reject(ctx context.Context, mopID, reviewerID, comments string) (model.Review, error) {
	if strings.TrimSpace(comments) == "" {
		comments = "Rejected"
	}
	return w.CreateReview(ctx, model.Review{
		MOPID:      mopID,
		ReviewerID: reviewerID,
		Status:     model.ReviewRejected,
		Comments:   comments,
	})
}

// UpdateReview mutates an existing review. An update that lands on a
// terminal status re-mirrors the MOP, even when the MOP had already reached
// a different terminal state.
func (w *Workflow) UpdateReview(ctx context.Context, id, status, comments string) (model.Review, error) {
	status = strings.TrimSpace(status)
	if status != "" && !validStatus(status) {
		return model.Review{}, common.InvalidInputf("invalid review status %q", status)
	}
	updated, err := w.store.UpdateReview(ctx, id, status, comments)
	if err != nil {
		return model.Review{}, err
	}
	if updated.Status == model.ReviewApproved || updated.Status == model.ReviewRejected {
		if err := w.mirrorStatus(ctx, updated.MOPID, updated.Status); err != nil {
			return model.Review{}, err
		}
	}
	return updated, nil
}

// mirrorStatus propagates a terminal review verdict to the MOP. Non-terminal
// statuses are a no-op.
func (w *Workflow) mirrorStatus(ctx context.Context, mopID, reviewStatus string) error {
	switch reviewStatus {
	case model.ReviewApproved:
		return w.store.UpdateMOPStatus(ctx, mopID, model.MOPApproved)
	case model.ReviewRejected:
		return w.store.UpdateMOPStatus(ctx, mopID, model.MOPRejected)
	}
	return nil
}

func validStatus(status string) bool {
	switch status {
	case model.ReviewPending, model.ReviewApproved, model.ReviewRejected:
		return true
	}
	return false
}
