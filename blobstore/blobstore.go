// Package blobstore retains the raw files behind ingested documents,
// so the original upload survives next to its extracted text.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore is the interface for raw upload retention
type BlobStore interface {
	// Upload stores a file and returns the storage path
	Upload(ctx context.Context, documentID, filename string, data io.Reader) (string, error)

	// Download retrieves a file by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a file by storage path
	Delete(ctx context.Context, storagePath string) error
}

// Type represents the blob storage backend type
type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)

// Config holds configuration for blob storage
type Config struct {
	Type         Type
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a blob store based on configuration
func New(cfg Config) (BlobStore, error) {
	switch cfg.Type {
	case TypeLocal:
		return NewLocal(cfg.LocalPath)
	case TypeS3:
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("unknown blob storage type: %s", cfg.Type)
	}
}

// NewFromEnv creates a blob store from environment variables
func NewFromEnv() (BlobStore, error) {
	storageType := os.Getenv("BLOB_STORAGE_TYPE")
	if storageType == "" {
		storageType = "local" // Default to local for development
	}

	cfg := Config{Type: Type(storageType)}

	switch cfg.Type {
	case TypeLocal:
		cfg.LocalPath = os.Getenv("BLOB_STORAGE_LOCAL_PATH")
		if cfg.LocalPath == "" {
			cfg.LocalPath = "./data/uploads"
		}
		return NewLocal(cfg.LocalPath)

	case TypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "ap-south-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3(cfg)

	default:
		return nil, fmt.Errorf("unknown blob storage type: %s", storageType)
	}
}

// storagePath generates a unique storage path for a document's raw
// file, bucketed by a short id prefix.
func storagePath(documentID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	// Sanitize filename
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	// Bucket by the id's trailing characters to spread directories
	bucket := documentID[len(documentID)-2:]
	return fmt.Sprintf("%s/%s_%s%s", bucket, documentID, baseName, ext)
}
