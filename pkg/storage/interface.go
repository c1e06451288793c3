package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// IStorage defines the interface for object storage operations.
// Implementations are safe for concurrent use.
type IStorage interface {
	// EnsureBucket creates the configured bucket if it does not exist.
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, req UploadRequest) (ObjectInfo, error)
	// PresignedGetURL returns a time-limited download URL for an object.
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, objectName string) error
	HealthCheck(ctx context.Context) error
}

// NewMinIO creates a new MinIO-backed storage client. Returns the interface.
func NewMinIO(cfg MinIOConfig) (IStorage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("storage: endpoint is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create client: %w", err)
	}

	return &implStorage{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}
