// File path: cmd/mopgen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nicodishanthj/mopgen/internal/api"
	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/extract"
	"github.com/nicodishanthj/mopgen/internal/sqlite"
	"github.com/nicodishanthj/mopgen/internal/storage"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("mopgen: .env file not loaded", "error", err)
	} else {
		logger.Info("mopgen: environment loaded from .env")
	}

	addr := flag.String("addr", ":3000", "listen address")
	dbPath := flag.String("db", defaultDBPath(), "path to the SQLite database")
	uploadRoot := flag.String("upload-root", "", "directory for buffering uploads (defaults to the system temp dir)")
	flag.Parse()

	logger.Info("mopgen: startup initiated", "addr", *addr, "db", *dbPath)

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Error("mopgen: sqlite open failed", "error", err)
		fmt.Println("sqlite error:", err)
		os.Exit(1)
	}
	defer store.Close()

	documents := openObjectStore("document", envOr("OSS_DOCUMENT_BUCKET", "mop-gen-documents"))
	exports := openObjectStore("export", envOr("OSS_EXPORT_BUCKET", "mop-gen-exports"))

	var extractor *extract.Client
	extractCfg := extract.LoadConfig()
	if extractCfg.BaseURL != "" {
		extractor, err = extract.NewClient(extractCfg)
		if err != nil {
			logger.Error("mopgen: extraction client init failed", "error", err)
			fmt.Println("extraction client error:", err)
			os.Exit(1)
		}
		logger.Info("mopgen: extraction service configured", "url", extractCfg.BaseURL)
	} else {
		logger.Warn("mopgen: extraction service not configured; uploads will stay unprocessed")
	}

	cfg := api.DefaultConfig()
	if trimmed := strings.TrimSpace(*uploadRoot); trimmed != "" {
		cfg.UploadRoot = trimmed
	}
	server, err := api.NewServer(store, documents, extractor, exports, &cfg)
	if err != nil {
		logger.Error("mopgen: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("mopgen: server listening", "addr", *addr, "health", "/api/health")
	fmt.Printf("Serving on %s\n", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("mopgen: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

// openObjectStore connects one named bucket, ensuring it exists. A missing
// OSS configuration is survivable: the routes that need the bucket fail
// per-request instead of blocking startup.
func openObjectStore(role, bucket string) storage.ObjectStore {
	logger := common.Logger()
	cfg := storage.LoadOSSConfig()
	if cfg.Endpoint == "" {
		logger.Warn("mopgen: object storage not configured", "role", role)
		return nil
	}
	cfg.Bucket = bucket
	store, err := storage.NewOSSStore(cfg)
	if err != nil {
		logger.Error("mopgen: object storage init failed", "role", role, "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Warn("mopgen: bucket check failed", "role", role, "bucket", bucket, "error", err)
	}
	return store
}

func defaultDBPath() string {
	return filepath.Join("data", "mopgen.db")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
