// File path: internal/api/review_handler.go
package api

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/mopgen/internal/auth"
	"github.com/nicodishanthj/mopgen/internal/model"
)

type reviewRequest struct {
	MOPID    string `json:"mopId"`
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

func (s *Server) handleReviewCreate(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	created, err := s.workflow.CreateReview(r.Context(), model.Review{
		MOPID:      req.MOPID,
		ReviewerID: auth.Identity(r.Context()),
		Status:     req.Status,
		Comments:   req.Comments,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleReviewsPending(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.store.PendingReviews(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleReviewGet(w http.ResponseWriter, r *http.Request) {
	review, err := s.store.ReviewByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleReviewUpdate(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	updated, err := s.workflow.UpdateReview(r.Context(), chi.URLParam(r, "id"), req.Status, req.Comments)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleReviewDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}

func (s *Server) handleMOPReviews(w http.ResponseWriter, r *http.Request) {
	mop, err := s.store.MOPByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	reviews, err := s.store.ReviewsForMOP(r.Context(), mop.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

type verdictRequest struct {
	Comments string `json:"comments"`
}

// verdictResponse mirrors the approve/reject payload: the recorded review
// alongside the MOP it transitioned.
type verdictResponse struct {
	Message string       `json:"message"`
	MOP     model.MOP    `json:"mop"`
	Review  model.Review `json:"review"`
}

func (s *Server) handleMOPApprove(w http.ResponseWriter, r *http.Request) {
	var req verdictRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	created, err := s.workflow.Approve(r.Context(), chi.URLParam(r, "id"), auth.Identity(r.Context()), req.Comments)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mop, err := s.store.MOPByID(r.Context(), created.MOPID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdictResponse{Message: "MOP approved successfully", MOP: mop, Review: created})
}

func (s *Server) handleMOPReject(w http.ResponseWriter, r *http.Request) {
	var req verdictRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeServiceError(w, err)
			return
		}
	}
	created, err := s.workflow.Reject(r.Context(), chi.URLParam(r, "id"), auth.Identity(r.Context()), req.Comments)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	mop, err := s.store.MOPByID(r.Context(), created.MOPID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdictResponse{Message: "MOP rejected successfully", MOP: mop, Review: created})
}
