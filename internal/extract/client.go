// File path: internal/extract/client.go
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/nicodishanthj/mopgen/internal/common"
)

// Result is the payload returned by the extraction service for both the
// initial process call and later status polls. ExtractedData is kept raw so
// it can be stored verbatim on the document row.
type Result struct {
	DocumentID    string          `json:"document_id"`
	Status        string          `json:"status"`
	Progress      int             `json:"progress"`
	ExtractedData json.RawMessage `json:"extracted_data"`
	Error         string          `json:"error"`
}

// Config carries the extraction service connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LoadConfig reads the EXTRACT_* environment.
func LoadConfig() Config {
	cfg := Config{
		BaseURL: strings.TrimSpace(os.Getenv("EXTRACT_SERVICE_URL")),
		APIKey:  strings.TrimSpace(os.Getenv("EXTRACT_SERVICE_API_KEY")),
	}
	if raw := strings.TrimSpace(os.Getenv("EXTRACT_SERVICE_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cfg.Timeout = parsed
		}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return cfg
}

// Client talks to the external document extraction service. All failures,
// transport and payload alike, surface as ErrUpstream so callers can degrade
// rather than propagate a hard error.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient validates the base URL and constructs a client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("extraction service url required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parse extraction service url: %w", err)
	}
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Process asks the service to begin extracting the uploaded document.
func (c *Client) Process(ctx context.Context, documentID, objectKey, contentType string) (Result, error) {
	body, err := json.Marshal(map[string]string{
		"document_id":  documentID,
		"object_key":   objectKey,
		"content_type": contentType,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode process request: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+"/process", bytes.NewReader(body))
}

// Status polls the service for a document's extraction progress.
func (c *Client) Status(ctx context.Context, documentID string) (Result, error) {
	return c.do(ctx, http.MethodGet, c.baseURL+"/status/"+url.PathEscape(documentID), nil)
}

func (c *Client) do(ctx context.Context, method, target string, body io.Reader) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Result{}, fmt.Errorf("build extraction request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: extraction request: %v", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return Result{}, fmt.Errorf("%w: read extraction response: %v", common.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("%w: extraction service returned %d", common.ErrUpstream, resp.StatusCode)
	}
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Result{}, fmt.Errorf("%w: decode extraction response: %v", common.ErrUpstream, err)
	}
	return result, nil
}
