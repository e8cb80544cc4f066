// File path: internal/api/logs_handler.go
package api

import (
	"net/http"

	"github.com/nicodishanthj/mopgen/internal/common"
)

// handleLogs returns the recent log entries captured by the common logger.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries := common.LogEntries()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}
