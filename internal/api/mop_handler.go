// File path: internal/api/mop_handler.go
package api

import (
	"fmt"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/mopgen/internal/auth"
	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
	"github.com/nicodishanthj/mopgen/internal/synth"
)

type mopRequest struct {
	DocumentID  string `json:"documentId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// mopResponse carries a MOP with its derived procedure steps. Steps are
// recomputed from the document's extraction snapshot on every read.
type mopResponse struct {
	model.MOP
	Steps []model.ProcedureStep `json:"steps"`
}

type mopEnvelope struct {
	MOP mopResponse `json:"mop"`
}

func (s *Server) handleMOPCreate(w http.ResponseWriter, r *http.Request) {
	var req mopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	doc, err := s.store.DocumentByID(r.Context(), req.DocumentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if doc.Status != model.DocumentCompleted {
		writeServiceError(w, common.InvalidInputf("document processing is not complete: %s", doc.Status))
		return
	}
	data := synth.ParseExtraction(doc.ExtractedJSON)
	if extractionEmpty(data) {
		writeServiceError(w, common.InvalidInputf("no extracted data available for mop generation"))
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = fmt.Sprintf("%s %s Configuration MOP", valueOr(data.Vendor, "Network"), valueOr(data.DeviceType, "Device"))
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Method of Procedure for configuring " + synth.DeviceLabel(data)
	}
	mop, err := s.store.CreateMOP(r.Context(), model.MOP{
		DocumentID:  req.DocumentID,
		Title:       title,
		Description: description,
		CreatedBy:   auth.Identity(r.Context()),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mopEnvelope{MOP: mopResponse{MOP: mop, Steps: synth.Synthesize(data)}})
}

func (s *Server) handleMOPList(w http.ResponseWriter, r *http.Request) {
	mops, err := s.store.ListMOPs(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mops)
}

func (s *Server) handleMOPGet(w http.ResponseWriter, r *http.Request) {
	mop, err := s.store.MOPByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response, err := s.mopWithSteps(r, mop)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mopEnvelope{MOP: response})
}

func (s *Server) handleMOPUpdate(w http.ResponseWriter, r *http.Request) {
	var req mopRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	mop, err := s.store.UpdateMOP(r.Context(), chi.URLParam(r, "id"), req.Title, req.Description, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mop)
}

func (s *Server) handleMOPDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteMOP(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "mop deleted"})
}

func (s *Server) mopWithSteps(r *http.Request, mop model.MOP) (mopResponse, error) {
	doc, err := s.store.DocumentByID(r.Context(), mop.DocumentID)
	if err != nil {
		return mopResponse{}, err
	}
	steps := synth.Synthesize(synth.ParseExtraction(doc.ExtractedJSON))
	return mopResponse{MOP: mop, Steps: steps}, nil
}

// extractionEmpty reports whether an extraction snapshot carries no usable
// device data at all, which rules out MOP generation.
func extractionEmpty(data model.ExtractedData) bool {
	return strings.TrimSpace(data.DeviceType) == "" &&
		strings.TrimSpace(data.Vendor) == "" &&
		strings.TrimSpace(data.Model) == "" &&
		len(data.Interfaces) == 0 &&
		len(data.RoutingProtocols) == 0 &&
		len(data.VLANs) == 0
}

func valueOr(v, fallback string) string {
	if trimmed := strings.TrimSpace(v); trimmed != "" {
		return trimmed
	}
	return fallback
}
