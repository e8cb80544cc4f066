// File path: internal/api/export_handler.go
package api

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
)

// handleExport renders a MOP into the requested format, uploads the artifact,
// and returns a presigned download link.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	result, err := s.pipeline.Export(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("format"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
