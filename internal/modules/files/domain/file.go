package domain

import (
	"context"
	"time"
)

// File is the metadata record kept for one uploaded document.
// StoredName is the generated name used as the blob key and as the
// lookup key for deletion; it is unique and never changes.
type File struct {
	Username     string    `db:"username" bson:"username"`
	OriginalName string    `db:"original_name" bson:"originalname"`
	StoredName   string    `db:"stored_name" bson:"filename"`
	ContentType  string    `db:"content_type" bson:"mimetype"`
	Size         int64     `db:"size_bytes" bson:"size"`
	UploadedAt   time.Time `db:"uploaded_at" bson:"uploaded_at"`
}

// FileRepository defines the contract for file record persistence
type FileRepository interface {
	Insert(ctx context.Context, file *File) error
	ListByUsername(ctx context.Context, username string) ([]File, error)
	// DeleteByStoredName removes at most one record and returns it.
	// Returns ErrFileNotFound when no record matches.
	DeleteByStoredName(ctx context.Context, storedName string) (*File, error)
}

// ListingCache caches per-owner listings. Implementations degrade
// silently: a cache failure is a miss, never an error.
type ListingCache interface {
	Get(ctx context.Context, username string) ([]File, bool)
	Set(ctx context.Context, username string, files []File)
	Invalidate(ctx context.Context, username string)
}

// EventPublisher notifies subscribers about record lifecycle changes
type EventPublisher interface {
	FileUploaded(username, storedName string)
	FileDeleted(username, storedName string)
}
