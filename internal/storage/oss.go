// File path: internal/storage/oss.go
package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	sdk "github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/nicodishanthj/mopgen/internal/common"
)

// OSSConfig carries the connection settings for the export bucket.
type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	DisableSSL      bool
}

// LoadOSSConfig reads the OSS_* environment.
func LoadOSSConfig() OSSConfig {
	return OSSConfig{
		Endpoint:        strings.TrimSpace(os.Getenv("OSS_ENDPOINT")),
		AccessKeyID:     strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID")),
		AccessKeySecret: strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET")),
		Bucket:          strings.TrimSpace(os.Getenv("OSS_BUCKET")),
		DisableSSL:      strings.EqualFold(strings.TrimSpace(os.Getenv("OSS_DISABLE_SSL")), "true"),
	}
}

// OSSStore implements ObjectStore against an OSS-compatible endpoint.
type OSSStore struct {
	client *sdk.Client
	bucket *sdk.Bucket
	name   string
}

// NewOSSStore connects to the endpoint and binds the configured bucket.
func NewOSSStore(cfg OSSConfig) (*OSSStore, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("oss bucket required")
	}
	endpoint, err := normalizeEndpoint(cfg.Endpoint, cfg.DisableSSL)
	if err != nil {
		return nil, err
	}
	client, err := sdk.New(endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("create oss client: %w", err)
	}
	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("bind oss bucket: %w", err)
	}
	common.Logger().Info("oss store ready", "endpoint", endpoint, "bucket", cfg.Bucket)
	return &OSSStore{client: client, bucket: bucket, name: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket when it does not already exist.
func (s *OSSStore) EnsureBucket(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	exists, err := s.client.IsBucketExist(s.name)
	if err != nil {
		return fmt.Errorf("%w: check bucket %s: %v", common.ErrStorage, s.name, err)
	}
	if exists {
		return nil
	}
	if err := s.client.CreateBucket(s.name); err != nil {
		return fmt.Errorf("%w: create bucket %s: %v", common.ErrStorage, s.name, err)
	}
	common.Logger().Info("created export bucket", "bucket", s.name)
	return nil
}

// Upload stores the local file under key.
func (s *OSSStore) Upload(ctx context.Context, key, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.bucket.PutObjectFromFile(key, path); err != nil {
		return fmt.Errorf("%w: upload %s: %v", common.ErrStorage, key, err)
	}
	return nil
}

// PresignedURL signs a time-limited GET link for key.
func (s *OSSStore) PresignedURL(ctx context.Context, key string, expirySeconds int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	signed, err := s.bucket.SignURL(key, sdk.HTTPGet, expirySeconds)
	if err != nil {
		return "", fmt.Errorf("%w: sign url for %s: %v", common.ErrStorage, key, err)
	}
	return signed, nil
}

// Remove deletes the object at key. OSS treats deleting a missing object as
// success, which matches the interface contract.
func (s *OSSStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.bucket.DeleteObject(key); err != nil {
		return fmt.Errorf("%w: delete %s: %v", common.ErrStorage, key, err)
	}
	return nil
}

// normalizeEndpoint accepts bare hosts and full URLs, returning a scheme
// qualified endpoint for the SDK.
func normalizeEndpoint(endpoint string, disableSSL bool) (string, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return "", fmt.Errorf("oss endpoint required")
	}
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return trimmed, nil
	}
	parsed, err = url.Parse("//" + trimmed)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid oss endpoint: %s", endpoint)
	}
	scheme := "https"
	if disableSSL {
		scheme = "http"
	}
	return scheme + "://" + parsed.Host + strings.TrimSuffix(parsed.Path, "/"), nil
}
