package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local implements BlobStore on the local filesystem
type Local struct {
	basePath string
}

// NewLocal creates a new local blob store
func NewLocal(basePath string) (*Local, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Local{basePath: basePath}, nil
}

// Upload stores a file locally
func (s *Local) Upload(ctx context.Context, documentID, filename string, data io.Reader) (string, error) {
	path := storagePath(documentID, filename)
	fullPath := filepath.Join(s.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Download retrieves a file from local storage
func (s *Local) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.basePath, path)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Delete removes a file from local storage
func (s *Local) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(s.basePath, path)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
