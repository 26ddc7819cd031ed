package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"docshare/internal/modules/files/domain"
)

// PgFileRepository implements domain.FileRepository on Postgres
type PgFileRepository struct {
	db *sqlx.DB
}

// NewFileRepository creates and returns a new PostgreSQL-based file
// repository implementing the domain.FileRepository interface
func NewFileRepository(db *sqlx.DB) *PgFileRepository {
	return &PgFileRepository{db: db}
}

// Insert implements domain.FileRepository
func (r *PgFileRepository) Insert(ctx context.Context, file *domain.File) error {
	query := `INSERT INTO files (username, original_name, stored_name, content_type, size_bytes, uploaded_at)
		VALUES (:username, :original_name, :stored_name, :content_type, :size_bytes, :uploaded_at)`

	_, err := r.db.NamedExecContext(ctx, query, file)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // Unique violation
				return domain.ErrDuplicateStoredName
			}
		}
		return err
	}
	return nil
}

// ListByUsername implements domain.FileRepository. ORDER BY id keeps
// insertion order.
func (r *PgFileRepository) ListByUsername(ctx context.Context, username string) ([]domain.File, error) {
	files := []domain.File{}
	query := `SELECT username, original_name, stored_name, content_type, size_bytes, uploaded_at
		FROM files WHERE username = $1 ORDER BY id`

	if err := r.db.SelectContext(ctx, &files, query, username); err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteByStoredName implements domain.FileRepository
func (r *PgFileRepository) DeleteByStoredName(ctx context.Context, storedName string) (*domain.File, error) {
	file := &domain.File{}
	query := `DELETE FROM files WHERE stored_name = $1
		RETURNING username, original_name, stored_name, content_type, size_bytes, uploaded_at`

	err := r.db.GetContext(ctx, file, query, storedName)
	if err == sql.ErrNoRows {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}
