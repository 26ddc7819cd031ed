package filestorage

import (
	"context"
	"fmt"

	"docshare/internal/modules/filestorage/domain"
	"docshare/internal/modules/filestorage/infrastructure/local"
	"docshare/internal/modules/filestorage/infrastructure/s3"
	"docshare/internal/shared/infrastructure/config"
)

// Module represents the blob storage module
type Module struct {
	storage domain.BlobStorage
}

// NewModule creates and initializes the blob storage module
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var storage domain.BlobStorage
	var err error

	if cfg.UseS3 {
		storage, err = s3.NewS3Storage(ctx, s3.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
	} else {
		storage, err = local.NewLocalStorage(cfg.LocalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
	}

	return &Module{storage: storage}, nil
}

// Storage returns the blob storage for use by other modules
func (m *Module) Storage() domain.BlobStorage {
	return m.storage
}
