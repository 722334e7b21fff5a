package model

import (
	"context"
	"io"
)

// Storage keeps attachment objects under caller-chosen keys.
type Storage interface {
	// Put stores the upload and returns the number of bytes written.
	Put(ctx context.Context, key string, upload AttachmentUpload) (int64, error)
	// Open returns the object content. Missing objects match ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}
