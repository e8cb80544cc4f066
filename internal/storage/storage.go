// File path: internal/storage/storage.go
package storage

import "context"

// ObjectStore abstracts the bucket operations the export pipeline needs.
// Implementations must be safe for concurrent use.
type ObjectStore interface {
	// EnsureBucket creates the configured bucket when it does not exist.
	EnsureBucket(ctx context.Context) error
	// Upload stores the file at path under key and returns nil on success.
	Upload(ctx context.Context, key, path string) error
	// PresignedURL returns a time-limited download link for key.
	PresignedURL(ctx context.Context, key string, expirySeconds int64) (string, error)
	// Remove deletes the object at key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
