package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"docshare/internal/modules/files/application"
	"docshare/internal/modules/files/domain"
)

// formOverhead leaves room in the request body limit for the multipart
// framing and the username field next to the file itself
const formOverhead = 1 << 20

type FileHandler struct {
	service  FileService
	maxBytes int64
}

func NewFileHandler(service FileService, maxBytes int64) *FileHandler {
	return &FileHandler{
		service:  service,
		maxBytes: maxBytes,
	}
}

// Upload handles POST /upload
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+formOverhead)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		log.Printf("[FileHandler.Upload] ParseMultipartForm error: %v", err)
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "file too large or malformed upload"})
		return
	}

	username := r.FormValue("username")
	file, header, err := r.FormFile("file")
	if strings.TrimSpace(username) == "" || err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Username and file required"})
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "file too large"})
		return
	}

	rec, err := h.service.Upload(r.Context(), application.UploadInput{
		Username:     username,
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      file,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameRequired) || errors.Is(err, domain.ErrFileRequired) {
			writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "Username and file required"})
			return
		}
		log.Printf("[FileHandler.Upload] upload failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "upload failed"})
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Message:  "File uploaded successfully",
		Filename: rec.StoredName,
	})
}

// List handles GET /files/{username}
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	files, err := h.service.List(r.Context(), username)
	if err != nil {
		log.Printf("[FileHandler.List] listing failed for %s: %v", username, err)
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Error retrieving files"})
		return
	}

	writeJSON(w, http.StatusOK, ToListResponse(files))
}

// Delete handles DELETE /files/{filename}
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storedName := r.PathValue("filename")

	err := h.service.Delete(r.Context(), storedName)
	if errors.Is(err, domain.ErrFileNotFound) {
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: "File not found"})
		return
	}
	if err != nil {
		log.Printf("[FileHandler.Delete] delete failed for %s: %v", storedName, err)
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Delete failed"})
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "File deleted successfully"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[FileHandler] response encode error: %v", err)
	}
}
