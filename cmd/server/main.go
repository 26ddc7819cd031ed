package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"docshare/internal/gateway"
	"docshare/internal/gateway/middleware"
	"docshare/internal/modules/events"
	"docshare/internal/modules/files"
	"docshare/internal/modules/filestorage"
	"docshare/internal/shared/infrastructure/config"
	"docshare/internal/shared/infrastructure/database"
	"docshare/pkg/migration"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Blob storage
	storageModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	// Record store (one of mongo / postgres, per RECORD_STORE)
	deps := files.Deps{Storage: storageModule.Storage()}

	var mongoClient *mongodriver.Client
	var pgDB *sqlx.DB

	switch cfg.RecordStore {
	case config.RecordStorePostgres:
		log.Println("Connecting to Postgres...")
		runner := migration.NewRunner(&migration.Config{
			MigrationsPath: cfg.Postgres.MigrationsPath,
			DatabaseURL:    cfg.Postgres.URL,
		})
		if err := runner.Up(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		pgDB, err = database.NewPostgres(cfg.Postgres.URL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pgDB.Close()
		deps.Postgres = pgDB

	default:
		log.Println("Connecting to MongoDB...")
		mongoClient, err = database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Mongo disconnect error: %v", err)
			}
		}()
		deps.Mongo = mongoClient.Database(cfg.Mongo.Database)
	}

	log.Println("Record store connected")

	// Listing cache is optional; only wired when REDIS_HOST is set
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		deps.Redis = redisClient
	}

	// Event feed
	eventsModule := events.NewModule()
	defer eventsModule.Stop()
	deps.Events = eventsModule.Publisher()

	// File records
	filesModule, err := files.NewModule(ctx, cfg, deps)
	if err != nil {
		log.Fatalf("Failed to initialize files module: %v", err)
	}

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		FileHandler:   filesModule.HTTPHandler(),
		EventsHandler: eventsModule.HTTPHandler(),
		ServeUploads:  !cfg.FileStorage.UseS3,
		UploadDir:     cfg.FileStorage.LocalPath,
	})

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
