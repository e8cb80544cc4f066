// File path: internal/api/document_handler.go
package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/mopgen/internal/auth"
	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
)

const maxUploadBytes = 32 << 20

// handleDocumentUpload accepts a multipart upload under the "document" field,
// stores the file in the document bucket, records the row, and kicks off
// extraction synchronously. A failed or malformed extraction response marks
// the row failed; the local temp copy is removed on every path.
func (s *Server) handleDocumentUpload(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if s.documents == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("document storage not configured"))
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeServiceError(w, common.InvalidInputf("parse multipart form: %v", err))
		return
	}
	file, header, err := r.FormFile("document")
	if err != nil {
		writeServiceError(w, common.InvalidInputf("no file uploaded"))
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp(s.uploadRoot, "upload-*")
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("create upload temp file: %w", err))
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, fmt.Errorf("buffer upload: %w", err))
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("close upload temp file: %w", err))
		return
	}

	objectKey := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	if err := s.documents.Upload(r.Context(), objectKey, tmp.Name()); err != nil {
		writeServiceError(w, err)
		return
	}

	doc, err := s.store.CreateDocument(r.Context(), model.Document{
		UploadedBy:   auth.Identity(r.Context()),
		Filename:     header.Filename,
		ObjectKey:    objectKey,
		Status:       model.DocumentProcessing,
		MetadataJSON: "{}",
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if s.extractor != nil {
		contentType := header.Header.Get("Content-Type")
		result, err := s.extractor.Process(r.Context(), doc.ID, objectKey, contentType)
		switch {
		case err != nil:
			logger.Warn("extraction request failed", "document", doc.ID, "error", err)
			if err := s.store.UpdateDocumentStatus(r.Context(), doc.ID, model.DocumentFailed); err != nil {
				writeServiceError(w, err)
				return
			}
		case result.Status == "failed":
			if err := s.store.UpdateDocumentStatus(r.Context(), doc.ID, model.DocumentFailed); err != nil {
				writeServiceError(w, err)
				return
			}
		case result.Status == "completed":
			if err := s.store.UpdateDocumentExtraction(r.Context(), doc.ID, string(result.ExtractedData), model.DocumentCompleted); err != nil {
				writeServiceError(w, err)
				return
			}
		}
		doc, err = s.store.DocumentByID(r.Context(), doc.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
	}

	logger.Info("document uploaded", "document", doc.ID, "filename", doc.Filename, "status", doc.Status)
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleDocumentList(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.ListDocuments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

type documentStatusResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// handleDocumentStatus returns the stored status. While the document is still
// processing it polls the extraction service and persists any transition; an
// upstream outage degrades to the stored status rather than failing.
func (s *Server) handleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	doc, err := s.store.DocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	progress := 0
	if doc.Status == model.DocumentProcessing && s.extractor != nil {
		result, err := s.extractor.Status(r.Context(), doc.ID)
		if err != nil {
			logger.Warn("extraction status poll failed", "document", doc.ID, "error", err)
		} else {
			switch result.Status {
			case "completed":
				if err := s.store.UpdateDocumentExtraction(r.Context(), doc.ID, string(result.ExtractedData), model.DocumentCompleted); err != nil {
					writeServiceError(w, err)
					return
				}
				doc.Status = model.DocumentCompleted
			case "failed":
				if err := s.store.UpdateDocumentStatus(r.Context(), doc.ID, model.DocumentFailed); err != nil {
					writeServiceError(w, err)
					return
				}
				doc.Status = model.DocumentFailed
			default:
				progress = result.Progress
			}
		}
	}
	if doc.Status == model.DocumentCompleted {
		progress = 100
	}
	writeJSON(w, http.StatusOK, documentStatusResponse{ID: doc.ID, Status: doc.Status, Progress: progress})
}

// handleDocumentDelete removes the row and its stored object. A storage
// failure is logged, not fatal; the database row is the source of truth.
func (s *Server) handleDocumentDelete(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	doc, err := s.store.DocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.store.DeleteDocument(r.Context(), doc.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	if s.documents != nil && doc.ObjectKey != "" {
		if err := s.documents.Remove(r.Context(), doc.ObjectKey); err != nil {
			logger.Warn("failed to remove stored document", "document", doc.ID, "key", doc.ObjectKey, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "document deleted"})
}
