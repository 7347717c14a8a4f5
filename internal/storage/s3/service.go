package s3

import (
	"context"
	"fmt"
	"io"

	"github.com/edulearn/platform/internal/errors"
	"github.com/edulearn/platform/internal/storage"
	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
)

// Service implements the ObjectStore interface against an S3-compatible backend
type Service struct {
	client   *minio.Client
	endpoint string
	bucket   string
	useSSL   bool
	logger   storage.Logger
}

// NewService creates a new S3 service instance
func NewService(cfg *storage.S3Config, logger storage.Logger) (*Service, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %v", err)
	}

	return &Service{
		client:   client,
		endpoint: cfg.Endpoint,
		bucket:   cfg.Bucket,
		useSSL:   cfg.UseSSL,
		logger:   logger,
	}, nil
}

// Put uploads an object and returns its public URL
func (s *Service) Put(ctx context.Context, key string, reader io.Reader, size int64, opts storage.PutOptions) (string, error) {
	if opts.OnProgress != nil {
		reader = storage.NewProgressReader(reader, size, opts.OnProgress)
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return "", errors.NewStorageError("put", fmt.Sprintf("failed to upload object %s", key), err)
	}

	return s.PublicURL(key), nil
}

// PublicURL resolves the public URL for an object key
func (s *Service) PublicURL(key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

// Close closes any open S3 connections and resources
func (s *Service) Close() error {
	return nil
}
