package storage

import (
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// MinIOConfig holds the configuration for the MinIO client.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// implStorage implements IStorage backed by MinIO.
type implStorage struct {
	client *minio.Client
	bucket string
	region string
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
}

// ObjectInfo represents metadata about a stored object.
type ObjectInfo struct {
	ObjectName   string    `json:"objectName"`
	OriginalName string    `json:"originalName"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"contentType"`
	ETag         string    `json:"etag"`
	UploadedAt   time.Time `json:"uploadedAt"`
	URL          string    `json:"url,omitempty"`
}
