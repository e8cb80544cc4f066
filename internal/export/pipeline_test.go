// File path: internal/export/pipeline_test.go
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/nicodishanthj/mopgen/internal/common"
	"github.com/nicodishanthj/mopgen/internal/model"
	"github.com/nicodishanthj/mopgen/internal/sqlite"
)

// fakeStore records uploads in memory and can be told to fail.
type fakeStore struct {
	uploads    map[string]string
	uploadErr  error
	presignErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{uploads: map[string]string{}}
}

func (f *fakeStore) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeStore) Upload(ctx context.Context, key, path string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f.uploads[key] = string(data)
	return nil
}

func (f *fakeStore) PresignedURL(ctx context.Context, key string, expirySeconds int64) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return fmt.Sprintf("https://bucket.example.com/%s?expires=%d", key, expirySeconds), nil
}

func (f *fakeStore) Remove(ctx context.Context, key string) error {
	delete(f.uploads, key)
	return nil
}

func newFixture(t *testing.T) (*Pipeline, *fakeStore, model.MOP) {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "mopgen.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	doc, err := store.CreateDocument(ctx, model.Document{Filename: "survey.pdf"})
	if err != nil {
		t.Fatalf("create document: %v", err)
	}
	payload := `{"extracted_data":{"device_type":"router","vendor":"cisco","interfaces":[{"name":"Gi0/0","ip":"10.0.0.1","subnet":"255.255.255.0"}]}}`
	if err := store.UpdateDocumentExtraction(ctx, doc.ID, payload, model.DocumentCompleted); err != nil {
		t.Fatalf("update extraction: %v", err)
	}
	mop, err := store.CreateMOP(ctx, model.MOP{DocumentID: doc.ID, Title: "Core Router Upgrade #1"})
	if err != nil {
		t.Fatalf("create mop: %v", err)
	}

	objects := newFakeStore()
	return NewPipeline(store, objects), objects, mop
}

func TestExportText(t *testing.T) {
	pipeline, objects, mop := newFixture(t)

	result, err := pipeline.Export(context.Background(), mop.ID, "txt")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	keyPattern := regexp.MustCompile(`^` + regexp.QuoteMeta(mop.ID) + `-\d+\.txt$`)
	if !keyPattern.MatchString(result.ObjectKey) {
		t.Fatalf("object key = %q", result.ObjectKey)
	}
	if result.Filename != "Core_Router_Upgrade__1.txt" {
		t.Fatalf("filename = %q", result.Filename)
	}
	if result.ContentType != "text/plain" {
		t.Fatalf("content type = %q", result.ContentType)
	}
	if result.ExpiresIn != 86400 {
		t.Fatalf("expiresIn = %d", result.ExpiresIn)
	}
	if !strings.Contains(result.URL, result.ObjectKey) {
		t.Fatalf("url = %q", result.URL)
	}

	uploaded, ok := objects.uploads[result.ObjectKey]
	if !ok {
		t.Fatal("artifact not uploaded")
	}
	if !strings.Contains(uploaded, "Core Router Upgrade #1") {
		t.Fatal("uploaded artifact missing title")
	}
	if !strings.Contains(uploaded, "ssh admin@10.0.0.1") {
		t.Fatal("uploaded artifact missing synthesized command")
	}
}

func TestExportRejectsFormatUpFront(t *testing.T) {
	pipeline, objects, mop := newFixture(t)

	_, err := pipeline.Export(context.Background(), mop.ID, "xml")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(objects.uploads) != 0 {
		t.Fatal("rejected format still uploaded an artifact")
	}
}

func TestExportMissingMOP(t *testing.T) {
	pipeline, _, _ := newFixture(t)

	if _, err := pipeline.Export(context.Background(), "missing", "pdf"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExportUploadFailureCleansTempFile(t *testing.T) {
	pipeline, objects, mop := newFixture(t)
	objects.uploadErr = fmt.Errorf("%w: bucket offline", common.ErrStorage)

	before := tempExportCount(t)
	_, err := pipeline.Export(context.Background(), mop.ID, "txt")
	if !errors.Is(err, common.ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
	if after := tempExportCount(t); after > before {
		t.Fatalf("temp export files leaked: before=%d after=%d", before, after)
	}
}

func TestExportSuccessCleansTempFile(t *testing.T) {
	pipeline, _, mop := newFixture(t)

	before := tempExportCount(t)
	if _, err := pipeline.Export(context.Background(), mop.ID, "html"); err != nil {
		t.Fatalf("export: %v", err)
	}
	if after := tempExportCount(t); after > before {
		t.Fatalf("temp export files leaked: before=%d after=%d", before, after)
	}
}

func tempExportCount(t *testing.T) int {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "mopgen-export-*"))
	if err != nil {
		t.Fatalf("glob temp dir: %v", err)
	}
	return len(matches)
}

func TestExportAllFormats(t *testing.T) {
	pipeline, objects, mop := newFixture(t)

	for _, format := range []string{"pdf", "docx", "html", "txt"} {
		result, err := pipeline.Export(context.Background(), mop.ID, format)
		if err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
		if len(objects.uploads[result.ObjectKey]) == 0 {
			t.Fatalf("export %s produced an empty artifact", format)
		}
	}
}
