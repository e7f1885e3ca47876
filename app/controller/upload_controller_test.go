package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo-pro/models"
)

func newUploadFixture() (*UploadController, *fakeDrive, *fakeSessions) {
	drive := &fakeDrive{}
	sessions := &fakeSessions{sessionID: "sess-1", data: models.SessionData{Email: "admin@example.com"}, token: "tok-1"}
	return NewUploadController(drive, sessions, testSecret), drive, sessions
}

// multipartUpload builds a multipart body with one "file" part carrying
// an explicit Content-Type.
func multipartUpload(t *testing.T, fieldName, filename, mimeType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func uploadRequest(t *testing.T, filename, mimeType string, data []byte) *http.Request {
	t.Helper()
	body, contentType := multipartUpload(t, "file", filename, mimeType, data)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func TestUploadSuccess(t *testing.T) {
	ctl, drive, _ := newUploadFixture()

	req := withSession(uploadRequest(t, "foto.png", "image/png", []byte("png-bytes")), "sess-1")
	rec := httptest.NewRecorder()
	ctl.Upload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSONBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "file-123", body["fileId"])
	assert.Equal(t, "https://drive.google.com/thumbnail?id=file-123&sz=w1000", body["url"])
	assert.Equal(t, []string{"foto.png"}, drive.uploaded)
}

func TestUploadRequiresSession(t *testing.T) {
	ctl, drive, _ := newUploadFixture()

	rec := httptest.NewRecorder()
	ctl.Upload(rec, uploadRequest(t, "foto.png", "image/png", []byte("png-bytes")))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, drive.uploaded)
}

func TestUploadRequiresAccessToken(t *testing.T) {
	ctl, drive, sessions := newUploadFixture()
	sessions.token = ""

	req := withSession(uploadRequest(t, "foto.png", "image/png", []byte("png-bytes")), "sess-1")
	rec := httptest.NewRecorder()
	ctl.Upload(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, drive.uploaded)
}

func TestUploadMissingFile(t *testing.T) {
	ctl, _, _ := newUploadFixture()

	body, contentType := multipartUpload(t, "otherfield", "foto.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	ctl.Upload(rec, withSession(req, "sess-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No se proporcionó ningún archivo", decodeJSONBody(t, rec)["error"])
}

func TestUploadRejectsInvalidMimeType(t *testing.T) {
	ctl, drive, _ := newUploadFixture()

	req := withSession(uploadRequest(t, "doc.pdf", "application/pdf", []byte("%PDF-")), "sess-1")
	rec := httptest.NewRecorder()
	ctl.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeJSONBody(t, rec)["error"], "Tipo de archivo no válido")
	assert.Empty(t, drive.uploaded)
}

func TestUploadMapsSessionExpired(t *testing.T) {
	ctl, drive, _ := newUploadFixture()
	drive.uploadErr = models.ErrSessionExpired

	req := withSession(uploadRequest(t, "foto.png", "image/png", []byte("png-bytes")), "sess-1")
	rec := httptest.NewRecorder()
	ctl.Upload(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadMapsScopeErrorWithReauth(t *testing.T) {
	ctl, drive, _ := newUploadFixture()
	drive.uploadErr = models.ErrScope

	req := withSession(uploadRequest(t, "foto.png", "image/png", []byte("png-bytes")), "sess-1")
	rec := httptest.NewRecorder()
	ctl.Upload(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeJSONBody(t, rec)
	assert.Equal(t, true, body["requiresReauth"])
	assert.Contains(t, body["error"], "permisos de Google Drive")
}

func TestUploadMethodNotAllowed(t *testing.T) {
	ctl, _, _ := newUploadFixture()

	rec := httptest.NewRecorder()
	ctl.Upload(rec, httptest.NewRequest(http.MethodGet, "/api/upload", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
