// Package storage holds the S3-compatible object store used to archive raw
// resume uploads. Implementations rely on streaming I/O only; the analysis
// core itself has no storage dependency.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions define optional parameters for uploading objects. Size should
// be the exact byte count if known, -1 otherwise.
type PutOptions struct {
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

// ObjectStore is a reusable S3-compatible object storage client.
type ObjectStore interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader with its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
