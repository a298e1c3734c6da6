// Package storage holds the object store used for uploaded images.
// Objects are streamed in and out; nothing is written to local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PresignExpiry is how long generated download links stay valid.
const PresignExpiry = 7 * 24 * time.Hour

// PutObjectOptions describe an object being written. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object store.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// URL returns a link clients can download the object from.
	URL(ctx context.Context, key string) (string, error)
}
