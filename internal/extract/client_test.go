// File path: internal/extract/client_test.go
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicodishanthj/mopgen/internal/common"
)

func TestClientProcess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(Result{
			DocumentID: "doc-1",
			Status:     "processing",
			Progress:   10,
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	result, err := client.Process(context.Background(), "doc-1", "uploads/doc-1.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if gotPath != "/process" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if gotBody["object_key"] != "uploads/doc-1.pdf" || gotBody["content_type"] != "application/pdf" {
		t.Fatalf("request body = %+v", gotBody)
	}
	if result.Status != "processing" || result.Progress != 10 {
		t.Fatalf("result = %+v", result)
	}
}

func TestClientStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status/doc-1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(Result{
			DocumentID:    "doc-1",
			Status:        "completed",
			Progress:      100,
			ExtractedData: json.RawMessage(`{"device_type":"router","vendor":"cisco"}`),
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	result, err := client.Status(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if result.Status != "completed" || result.Progress != 100 {
		t.Fatalf("result = %+v", result)
	}
	if len(result.ExtractedData) == 0 {
		t.Fatal("extracted data not carried through")
	}
}

func TestClientUpstreamFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client, _ := NewClient(Config{BaseURL: server.URL})
		if _, err := client.Status(context.Background(), "doc-1"); !errors.Is(err, common.ErrUpstream) {
			t.Fatalf("err = %v, want ErrUpstream", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client, _ := NewClient(Config{BaseURL: server.URL})
		if _, err := client.Status(context.Background(), "doc-1"); !errors.Is(err, common.ErrUpstream) {
			t.Fatalf("err = %v, want ErrUpstream", err)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		client, _ := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
		if _, err := client.Status(context.Background(), "doc-1"); !errors.Is(err, common.ErrUpstream) {
			t.Fatalf("err = %v, want ErrUpstream", err)
		}
	})
}

func TestNewClientRequiresURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for empty base url")
	}
}
