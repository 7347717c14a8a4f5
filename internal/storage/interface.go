package storage

import (
	"context"
	"io"
)

// PutOptions carries per-upload options for object storage writes
type PutOptions struct {
	ContentType string
	// OnProgress, when set, receives byte counts as the transfer advances
	OnProgress func(bytesRead, totalBytes int64)
}

// ObjectStore defines the interface for object storage operations
type ObjectStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, opts PutOptions) (string, error)
	PublicURL(key string) string
	Close() error
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogWarn(message string, fields map[string]interface{})
}
