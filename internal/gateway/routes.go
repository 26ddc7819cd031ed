package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	events_http "docshare/internal/modules/events/interfaces/http"
	files_http "docshare/internal/modules/files/interfaces/http"
)

// RouterConfig holds all the handlers needed for routing
type RouterConfig struct {
	FileHandler   *files_http.FileHandler
	EventsHandler *events_http.EventsHandler

	// ServeUploads enables read-only serving of the local blob
	// directory under /uploads/. Off when blobs live in S3.
	ServeUploads bool
	UploadDir    string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// File Routes
	mux.HandleFunc("POST /upload", config.FileHandler.Upload)
	mux.HandleFunc("GET /files/{username}", config.FileHandler.List)
	mux.HandleFunc("DELETE /files/{filename}", config.FileHandler.Delete)

	// Event Feed
	mux.HandleFunc("GET /ws", config.EventsHandler.Subscribe)

	// Static serving of uploaded blobs
	if config.ServeUploads {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadDir)))
		mux.Handle("GET /uploads/", fileServer)
		mux.Handle("HEAD /uploads/", fileServer)
	}

	return mux
}
