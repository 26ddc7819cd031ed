package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docshare/internal/modules/files/application"
	"docshare/internal/modules/files/domain"
	files_http "docshare/internal/modules/files/interfaces/http"
	"docshare/internal/shared/infrastructure/config"
)

func newHandler() (*files_http.FileHandler, *mockFileService) {
	svc := new(mockFileService)
	return files_http.NewFileHandler(svc, config.DefaultMaxUploadBytes), svc
}

func multipartBody(t *testing.T, username, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if username != "" {
		require.NoError(t, mw.WriteField("username", username))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestFileHandler_Upload_Success(t *testing.T) {
	h, svc := newHandler()

	rec := &domain.File{
		Username:     "alice",
		OriginalName: "report.pdf",
		StoredName:   "1700000000000-report.pdf",
		ContentType:  "application/pdf",
		Size:         4,
		UploadedAt:   time.Now().UTC(),
	}
	svc.On("Upload", mock.Anything, mock.MatchedBy(func(in application.UploadInput) bool {
		return in.Username == "alice" && in.OriginalName == "report.pdf" && in.Size == 4
	})).Return(rec, nil).Once()

	body, contentType := multipartBody(t, "alice", "report.pdf", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp files_http.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "File uploaded successfully", resp.Message)
	assert.Equal(t, "1700000000000-report.pdf", resp.Filename)
	svc.AssertExpectations(t)
}

func TestFileHandler_Upload_MissingUsername(t *testing.T) {
	h, svc := newHandler()

	body, contentType := multipartBody(t, "", "report.pdf", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp files_http.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username and file required", resp.Message)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestFileHandler_Upload_MissingFile(t *testing.T) {
	h, svc := newHandler()

	body, contentType := multipartBody(t, "alice", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestFileHandler_Upload_NotMultipart(t *testing.T) {
	h, svc := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("not-multipart"))
	w := httptest.NewRecorder()
	h.Upload(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestFileHandler_Upload_ServiceFailure(t *testing.T) {
	h, svc := newHandler()
	svc.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	body, contentType := multipartBody(t, "alice", "report.pdf", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.Upload(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFileHandler_List_Success(t *testing.T) {
	h, svc := newHandler()

	svc.On("List", mock.Anything, "alice").Return([]domain.File{
		{
			Username:     "alice",
			OriginalName: "report.pdf",
			StoredName:   "1700000000000-report.pdf",
			ContentType:  "application/pdf",
			Size:         1024,
		},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/files/alice", nil)
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp files_http.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "report.pdf", resp.Files[0].OriginalName)
	assert.Equal(t, int64(1024), resp.Files[0].Size)

	// Wire field names are fixed by the API contract.
	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw["files"], 1)
	for _, field := range []string{"username", "originalname", "filename", "mimetype", "size", "uploaded_at"} {
		assert.Contains(t, raw["files"][0], field)
	}
}

func TestFileHandler_List_EmptyIsNotAnError(t *testing.T) {
	h, svc := newHandler()
	svc.On("List", mock.Anything, "nobody").Return([]domain.File{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/files/nobody", nil)
	req.SetPathValue("username", "nobody")
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"files":[]}`, w.Body.String())
}

func TestFileHandler_List_ServiceFailure(t *testing.T) {
	h, svc := newHandler()
	svc.On("List", mock.Anything, "alice").Return(nil, assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/files/alice", nil)
	req.SetPathValue("username", "alice")
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFileHandler_Delete_Flow(t *testing.T) {
	h, svc := newHandler()

	// First delete succeeds, the second hits not-found.
	svc.On("Delete", mock.Anything, "1700000000000-report.pdf").Return(nil).Once()
	svc.On("Delete", mock.Anything, "1700000000000-report.pdf").Return(domain.ErrFileNotFound).Once()

	req := httptest.NewRequest(http.MethodDelete, "/files/1700000000000-report.pdf", nil)
	req.SetPathValue("filename", "1700000000000-report.pdf")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"File deleted successfully"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/files/1700000000000-report.pdf", nil)
	req.SetPathValue("filename", "1700000000000-report.pdf")
	w = httptest.NewRecorder()
	h.Delete(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"File not found"}`, w.Body.String())

	svc.AssertExpectations(t)
}

func TestFileHandler_Delete_ServiceFailure(t *testing.T) {
	h, svc := newHandler()
	svc.On("Delete", mock.Anything, "x").Return(assert.AnError).Once()

	req := httptest.NewRequest(http.MethodDelete, "/files/x", nil)
	req.SetPathValue("filename", "x")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
