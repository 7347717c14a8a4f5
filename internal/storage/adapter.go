package storage

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/edulearn/platform/internal/errors"
	"github.com/edulearn/platform/internal/video"
)

var (
	_ video.MediaStore = (*DirectStore)(nil)
	_ video.MediaStore = (*FallbackStore)(nil)
)

// DirectStore adapts an ObjectStore to the upload pipeline's MediaStore.
// Storage failures surface to the caller unchanged.
type DirectStore struct {
	store ObjectStore
}

// NewDirectStore creates a MediaStore that passes storage errors through
func NewDirectStore(store ObjectStore) *DirectStore {
	return &DirectStore{store: store}
}

func (s *DirectStore) PutMedia(ctx context.Context, key string, reader io.Reader, size int64, contentType string, onProgress func(bytesRead, totalBytes int64)) (video.PutResult, error) {
	url, err := s.store.Put(ctx, key, reader, size, PutOptions{
		ContentType: contentType,
		OnProgress:  onProgress,
	})
	if err != nil {
		return video.PutResult{}, err
	}
	return video.PutResult{URL: url}, nil
}

func (s *DirectStore) PutThumbnail(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (video.PutResult, error) {
	url, err := s.store.Put(ctx, key, reader, size, PutOptions{ContentType: contentType})
	if err != nil {
		return video.PutResult{}, err
	}
	return video.PutResult{URL: url}, nil
}

// FallbackStore wraps an ObjectStore and substitutes fixed placeholder URLs
// when the backend rejects a write. Only storage failures trigger the
// substitution; anything else still fails the attempt.
type FallbackStore struct {
	store    ObjectStore
	fallback FallbackConfig
	logger   Logger
}

// NewFallbackStore creates a MediaStore that degrades to placeholder URLs
func NewFallbackStore(store ObjectStore, fallback FallbackConfig, logger Logger) *FallbackStore {
	return &FallbackStore{store: store, fallback: fallback, logger: logger}
}

func (s *FallbackStore) PutMedia(ctx context.Context, key string, reader io.Reader, size int64, contentType string, onProgress func(bytesRead, totalBytes int64)) (video.PutResult, error) {
	url, err := s.store.Put(ctx, key, reader, size, PutOptions{
		ContentType: contentType,
		OnProgress:  onProgress,
	})
	if err != nil {
		if result, ok := s.substitute(key, s.fallback.MediaURL, err); ok {
			return result, nil
		}
		return video.PutResult{}, err
	}
	return video.PutResult{URL: url}, nil
}

func (s *FallbackStore) PutThumbnail(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (video.PutResult, error) {
	url, err := s.store.Put(ctx, key, reader, size, PutOptions{ContentType: contentType})
	if err != nil {
		if result, ok := s.substitute(key, s.fallback.ThumbnailURL, err); ok {
			return result, nil
		}
		return video.PutResult{}, err
	}
	return video.PutResult{URL: url}, nil
}

// substitute returns a placeholder result when the error is a storage
// failure and a placeholder URL is configured
func (s *FallbackStore) substitute(key, fallbackURL string, err error) (video.PutResult, bool) {
	var storageErr *errors.StorageError
	if !stderrors.As(err, &storageErr) {
		return video.PutResult{}, false
	}
	if fallbackURL == "" {
		return video.PutResult{}, false
	}
	s.logger.LogWarn("Storage write failed, substituting placeholder URL", map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})
	return video.PutResult{URL: fallbackURL, UsedFallback: true}, true
}
