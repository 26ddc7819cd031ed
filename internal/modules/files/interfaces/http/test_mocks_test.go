package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docshare/internal/modules/files/application"
	"docshare/internal/modules/files/domain"
)

type mockFileService struct{ mock.Mock }

func (m *mockFileService) Upload(ctx context.Context, in application.UploadInput) (*domain.File, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *mockFileService) List(ctx context.Context, username string) ([]domain.File, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.File), args.Error(1)
}

func (m *mockFileService) Delete(ctx context.Context, storedName string) error {
	args := m.Called(ctx, storedName)
	return args.Error(0)
}
