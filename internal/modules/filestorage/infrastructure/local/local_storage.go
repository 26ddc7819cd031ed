package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements BlobStorage using the local filesystem.
// Keys map directly to file names under the base path.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local filesystem storage
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// BasePath returns the storage root directory
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

// Put writes the blob under key inside the storage root
func (l *LocalStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	outFile, err := os.Create(filepath.Join(l.basePath, key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, r); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Delete removes the blob stored under key
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return os.Remove(filepath.Join(l.basePath, key))
}

// validateKey rejects keys that would escape the storage root
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	if strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid storage key: %q", key)
	}
	return nil
}
