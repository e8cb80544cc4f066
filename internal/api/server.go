// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/nicodishanthj/mopgen/internal/auth"
	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/export"
	"github.com/nicodishanthj/mopgen/internal/extract"
	"github.com/nicodishanthj/mopgen/internal/review"
	"github.com/nicodishanthj/mopgen/internal/sqlite"
	"github.com/nicodishanthj/mopgen/internal/storage"
)

// Server hosts the MOP generation HTTP API.
type Server struct {
	router     chi.Router
	store      *sqlite.Store
	documents  storage.ObjectStore
	extractor  *extract.Client
	workflow   *review.Workflow
	pipeline   *export.Pipeline
	auth       *auth.Service
	uploadRoot string
}

// Config controls optional server behavior.
type Config struct {
	UploadRoot string
}

// DefaultConfig returns the standard configuration used when no overrides
// are provided.
func DefaultConfig() Config {
	return Config{
		UploadRoot: filepath.Join(os.TempDir(), "mopgen_uploads"),
	}
}

// Merge overlays non-empty configuration from the override onto the base.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.UploadRoot) != "" {
		result.UploadRoot = strings.TrimSpace(override.UploadRoot)
	}
	return result
}

// NewServer wires the storage, extraction, review, and export collaborators
// into a routed HTTP server. The extractor and document store may be nil in
// reduced deployments; the routes that need them degrade or fail per-request.
func NewServer(store *sqlite.Store, documents storage.ObjectStore, extractor *extract.Client, exports storage.ObjectStore, cfg *Config) (*Server, error) {
	logger := common.Logger()
	if store == nil {
		return nil, fmt.Errorf("sqlite store required")
	}
	configuration := DefaultConfig()
	if cfg != nil {
		configuration = configuration.Merge(*cfg)
	}
	if err := os.MkdirAll(configuration.UploadRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	srv := &Server{
		router:     chi.NewRouter(),
		store:      store,
		documents:  documents,
		extractor:  extractor,
		workflow:   review.NewWorkflow(store),
		pipeline:   export.NewPipeline(store, exports),
		auth:       auth.NewService(store),
		uploadRoot: configuration.UploadRoot,
	}
	srv.routes()
	logger.Info("api: server ready",
		"documents_store", documents != nil,
		"extractor", extractor != nil,
	)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	s.router.Use(corsMiddleware)
	s.router.Use(s.auth.Middleware)
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Post("/api/auth/login", s.handleLogin)

	s.router.Post("/api/documents", s.handleDocumentUpload)
	s.router.Get("/api/documents", s.handleDocumentList)
	s.router.Get("/api/documents/{id}/status", s.handleDocumentStatus)
	s.router.Delete("/api/documents/{id}", s.handleDocumentDelete)

	s.router.Post("/api/mops", s.handleMOPCreate)
	s.router.Get("/api/mops", s.handleMOPList)
	s.router.Get("/api/mops/{id}", s.handleMOPGet)
	s.router.Put("/api/mops/{id}", s.handleMOPUpdate)
	s.router.Delete("/api/mops/{id}", s.handleMOPDelete)
	s.router.Post("/api/mops/{id}/approve", s.handleMOPApprove)
	s.router.Post("/api/mops/{id}/reject", s.handleMOPReject)
	s.router.Get("/api/mops/{id}/reviews", s.handleMOPReviews)
	s.router.Get("/api/mops/{id}/export", s.handleExport)

	s.router.Post("/api/reviews", s.handleReviewCreate)
	s.router.Get("/api/reviews/pending", s.handleReviewsPending)
	s.router.Get("/api/reviews/{id}", s.handleReviewGet)
	s.router.Put("/api/reviews/{id}", s.handleReviewUpdate)
	s.router.Delete("/api/reviews/{id}", s.handleReviewDelete)

	s.router.Get("/api/logs", s.handleLogs)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// writeServiceError maps a classified error onto its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, common.HTTPStatus(err), err)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.InvalidInputf("decode request body: %v", err)
	}
	return nil
}
