package files

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"docshare/internal/modules/files/application"
	"docshare/internal/modules/files/domain"
	"docshare/internal/modules/files/infrastructure/cache"
	mongorepo "docshare/internal/modules/files/infrastructure/persistence/mongo"
	pgrepo "docshare/internal/modules/files/infrastructure/persistence/postgres"
	files_http "docshare/internal/modules/files/interfaces/http"
	storagedomain "docshare/internal/modules/filestorage/domain"
	"docshare/internal/shared/infrastructure/config"
)

// Deps carries the externally constructed collaborators into the
// module. Exactly one of Mongo / Postgres must be set, matching
// cfg.RecordStore.
type Deps struct {
	Mongo    *mongodriver.Database
	Postgres *sqlx.DB
	Redis    *redis.Client
	Storage  storagedomain.BlobStorage
	Events   domain.EventPublisher
}

// Module represents the file-record lifecycle module
type Module struct {
	service *application.FileService
	handler *files_http.FileHandler
}

// NewModule creates and wires the files module
func NewModule(ctx context.Context, cfg config.Config, deps Deps) (*Module, error) {
	var repo domain.FileRepository

	switch cfg.RecordStore {
	case config.RecordStorePostgres:
		if deps.Postgres == nil {
			return nil, fmt.Errorf("postgres record store selected but no connection provided")
		}
		repo = pgrepo.NewFileRepository(deps.Postgres)
	case config.RecordStoreMongo:
		if deps.Mongo == nil {
			return nil, fmt.Errorf("mongo record store selected but no connection provided")
		}
		mr := mongorepo.NewFileRepository(deps.Mongo)
		if err := mr.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure mongo indexes: %w", err)
		}
		repo = mr
	default:
		return nil, fmt.Errorf("unknown record store %q", cfg.RecordStore)
	}

	var listingCache domain.ListingCache = cache.NoopListingCache{}
	if deps.Redis != nil {
		listingCache = cache.NewListingCache(deps.Redis, cache.DefaultTTL)
	}

	service := application.NewFileService(repo, deps.Storage, listingCache, deps.Events)
	handler := files_http.NewFileHandler(service, cfg.Upload.MaxBytes)

	return &Module{
		service: service,
		handler: handler,
	}, nil
}

// HTTPHandler returns the module's HTTP handler
func (m *Module) HTTPHandler() *files_http.FileHandler {
	return m.handler
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}
