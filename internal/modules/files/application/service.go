package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/modules/files/domain"
	storagedomain "docshare/internal/modules/filestorage/domain"
)

// UploadInput carries one upload request into the service.
// Content must be seekable so the write can be replayed when the
// generated stored name collides.
type UploadInput struct {
	Username     string
	OriginalName string
	ContentType  string
	Size         int64
	Content      io.ReadSeeker
}

// FileService implements the upload / list / delete record lifecycle
type FileService struct {
	repo    domain.FileRepository
	storage storagedomain.BlobStorage
	cache   domain.ListingCache
	events  domain.EventPublisher
}

// NewFileService creates a new file service
func NewFileService(repo domain.FileRepository, storage storagedomain.BlobStorage, cache domain.ListingCache, events domain.EventPublisher) *FileService {
	return &FileService{
		repo:    repo,
		storage: storage,
		cache:   cache,
		events:  events,
	}
}

// Upload stores the blob, inserts the metadata record and returns it.
// If the record insert fails after the blob was written, the blob is
// removed again so no orphan is left behind.
func (s *FileService) Upload(ctx context.Context, in UploadInput) (*domain.File, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	if in.OriginalName == "" || in.Content == nil {
		return nil, domain.ErrFileRequired
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	storedName := GenerateStoredName(in.OriginalName, time.Now())

	file, err := s.persist(ctx, username, storedName, contentType, in)
	if errors.Is(err, domain.ErrDuplicateStoredName) {
		// Millisecond timestamps can collide for identical names.
		// Retry once with a random suffix in the name.
		storedName = fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], SanitizeName(in.OriginalName))
		log.Printf("[FileService.Upload] stored name collision, retrying as %s", storedName)

		if _, seekErr := in.Content.Seek(0, io.SeekStart); seekErr != nil {
			return nil, fmt.Errorf("failed to rewind upload: %w", seekErr)
		}
		file, err = s.persist(ctx, username, storedName, contentType, in)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, username)
	s.events.FileUploaded(username, file.StoredName)

	return file, nil
}

// persist performs one blob write plus one record insert, deleting the
// blob again when the insert fails
func (s *FileService) persist(ctx context.Context, username, storedName, contentType string, in UploadInput) (*domain.File, error) {
	if err := s.storage.Put(ctx, storedName, in.Content, contentType); err != nil {
		return nil, fmt.Errorf("blob write failed: %w", err)
	}

	file := &domain.File{
		Username:     username,
		OriginalName: in.OriginalName,
		StoredName:   storedName,
		ContentType:  contentType,
		Size:         in.Size,
		UploadedAt:   time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, file); err != nil {
		if delErr := s.storage.Delete(ctx, storedName); delErr != nil {
			log.Printf("[FileService.Upload] failed to remove blob %s after insert error: %v", storedName, delErr)
		}
		if errors.Is(err, domain.ErrDuplicateStoredName) {
			return nil, err
		}
		return nil, fmt.Errorf("record insert failed: %w", err)
	}

	return file, nil
}

// List returns every record owned by username, newest insertions last.
// An unknown username yields an empty slice, not an error.
func (s *FileService) List(ctx context.Context, username string) ([]domain.File, error) {
	if files, ok := s.cache.Get(ctx, username); ok {
		return files, nil
	}

	files, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []domain.File{}
	}

	s.cache.Set(ctx, username, files)
	return files, nil
}

// Delete removes at most one record by stored name. The blob itself is
// intentionally retained. Returns domain.ErrFileNotFound when nothing
// matched.
func (s *FileService) Delete(ctx context.Context, storedName string) error {
	file, err := s.repo.DeleteByStoredName(ctx, storedName)
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, file.Username)
	s.events.FileDeleted(file.Username, file.StoredName)

	return nil
}

// GenerateStoredName builds the collision-resistant storage key for an
// upload: millisecond timestamp plus the sanitized original name.
func GenerateStoredName(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), SanitizeName(originalName))
}

// SanitizeName reduces a submitted file name to a safe single path
// element usable as a storage key
func SanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "file"
	}
	return base
}
