package config

import (
	"os"
	"strconv"

	"docshare/internal/shared/infrastructure/database"
)

// Record store backends selectable via RECORD_STORE.
const (
	RecordStoreMongo    = "mongo"
	RecordStorePostgres = "postgres"
)

// DefaultMaxUploadBytes bounds a single upload payload (10 MiB).
const DefaultMaxUploadBytes = 10 << 20

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	RecordStore string
	Mongo       database.MongoConfig
	Postgres    PostgresConfig
	Redis       database.RedisConfig
	FileStorage FileStorageConfig
	Upload      UploadConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// PostgresConfig holds the Postgres record store configuration
type PostgresConfig struct {
	URL            string
	MigrationsPath string
}

// FileStorageConfig holds blob storage configuration
type FileStorageConfig struct {
	UseS3       bool
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
	LocalPath   string
}

// UploadConfig holds upload limits
type UploadConfig struct {
	MaxBytes int64
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		RecordStore: getEnv("RECORD_STORE", RecordStoreMongo),
		Mongo: database.MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017/docshare"),
			Database: getEnv("MONGO_DB", "docshare"),
		},
		Postgres: PostgresConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		FileStorage: FileStorageConfig{
			UseS3:       getEnv("USE_S3", "false") == "true",
			S3Region:    getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:  getEnv("S3_ENDPOINT", ""),
			S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey: getEnv("S3_SECRET_KEY", ""),
			S3Bucket:    getEnv("S3_BUCKET", ""),
			S3UseSSL:    getEnv("S3_USE_SSL", "true") == "true",
			LocalPath:   getEnv("UPLOAD_DIR", "./uploads"),
		},
		Upload: UploadConfig{
			MaxBytes: parseInt64(getEnv("MAX_UPLOAD_BYTES", ""), DefaultMaxUploadBytes),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseInt64 parses a positive integer or returns a default value
func parseInt64(value string, defaultValue int64) int64 {
	if v, err := strconv.ParseInt(value, 10, 64); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
