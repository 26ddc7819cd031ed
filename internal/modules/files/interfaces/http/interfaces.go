package http

import (
	"context"

	"docshare/internal/modules/files/application"
	"docshare/internal/modules/files/domain"
)

// FileService is the application surface the handler depends on
type FileService interface {
	Upload(ctx context.Context, in application.UploadInput) (*domain.File, error)
	List(ctx context.Context, username string) ([]domain.File, error)
	Delete(ctx context.Context, storedName string) error
}
