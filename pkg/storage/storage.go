package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates the configured bucket if it does not exist.
func (s *implStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("storage: check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return fmt.Errorf("storage: create bucket: %w", err)
	}
	return nil
}

// Upload stores an object in the configured bucket.
func (s *implStorage) Upload(ctx context.Context, req UploadRequest) (ObjectInfo, error) {
	if req.ObjectName == "" {
		return ObjectInfo{}, fmt.Errorf("storage: object name is required")
	}
	if req.Reader == nil {
		return ObjectInfo{}, fmt.Errorf("storage: reader is required")
	}

	opts := minio.PutObjectOptions{ContentType: req.ContentType}
	if req.OriginalName != "" {
		opts.UserMetadata = map[string]string{"original-name": req.OriginalName}
	}

	info, err := s.client.PutObject(ctx, s.bucket, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("storage: upload object: %w", err)
	}

	return ObjectInfo{
		ObjectName:   req.ObjectName,
		OriginalName: req.OriginalName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		UploadedAt:   time.Now(),
	}, nil
}

// PresignedGetURL returns a time-limited download URL for an object.
func (s *implStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("storage: presign url: %w", err)
	}
	return u.String(), nil
}

// Delete removes an object from the configured bucket.
func (s *implStorage) Delete(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: delete object: %w", err)
	}
	return nil
}

// HealthCheck verifies connectivity to the storage backend.
func (s *implStorage) HealthCheck(ctx context.Context) error {
	if _, err := s.client.BucketExists(ctx, s.bucket); err != nil {
		return fmt.Errorf("storage: health check: %w", err)
	}
	return nil
}
