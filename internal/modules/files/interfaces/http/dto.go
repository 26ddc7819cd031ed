package http

import (
	"time"

	"docshare/internal/modules/files/domain"
)

// FileResponse is the wire representation of one file record
type FileResponse struct {
	Username     string    `json:"username"`
	OriginalName string    `json:"originalname"`
	StoredName   string    `json:"filename"`
	ContentType  string    `json:"mimetype"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// UploadResponse is returned by POST /upload
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// ListResponse is returned by GET /files/{username}
type ListResponse struct {
	Files []FileResponse `json:"files"`
}

// MessageResponse carries a bare status message
type MessageResponse struct {
	Message string `json:"message"`
}

// ToFileResponse maps a domain record to its wire form
func ToFileResponse(f *domain.File) FileResponse {
	return FileResponse{
		Username:     f.Username,
		OriginalName: f.OriginalName,
		StoredName:   f.StoredName,
		ContentType:  f.ContentType,
		Size:         f.Size,
		UploadedAt:   f.UploadedAt,
	}
}

// ToListResponse maps a listing to its wire form
func ToListResponse(files []domain.File) ListResponse {
	out := ListResponse{Files: make([]FileResponse, 0, len(files))}
	for i := range files {
		out.Files = append(out.Files, ToFileResponse(&files[i]))
	}
	return out
}
