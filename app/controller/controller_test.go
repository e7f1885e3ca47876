package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"catalogo-pro/models"
	"catalogo-pro/service"
	"catalogo-pro/session"
)

const testSecret = "test-secret"

// fakeSheets records mutations and serves canned reads.
type fakeSheets struct {
	items       []models.CatalogItem
	listErr     error
	appendErr   error
	updateErr   error
	deleteErr   error
	homeErr     error
	home        models.HomeContent
	appended    []models.CatalogItem
	updatedRows []int
	updated     []models.CatalogItem
	deletedRows []int
	homeUpdates []models.HomeContent
}

var _ service.SheetsServiceInterface = (*fakeSheets)(nil)

func (f *fakeSheets) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeSheets) AppendItem(ctx context.Context, item models.CatalogItem) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, item)
	return nil
}

func (f *fakeSheets) UpdateItem(ctx context.Context, rowIndex int, item models.CatalogItem) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedRows = append(f.updatedRows, rowIndex)
	f.updated = append(f.updated, item)
	return nil
}

func (f *fakeSheets) DeleteItem(ctx context.Context, rowIndex int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedRows = append(f.deletedRows, rowIndex)
	return nil
}

func (f *fakeSheets) GetHomeContent(ctx context.Context) models.HomeContent {
	return f.home
}

func (f *fakeSheets) UpdateHomeContent(ctx context.Context, payload models.HomeContent) error {
	if f.homeErr != nil {
		return f.homeErr
	}
	f.homeUpdates = append(f.homeUpdates, payload)
	return nil
}

// fakeDrive records uploads and removals.
type fakeDrive struct {
	real       service.DriveService // delegate validation to the real rules
	uploadErr  error
	uploaded   []string
	removed    []string
	removedTok []string
}

var _ service.DriveServiceInterface = (*fakeDrive)(nil)

func (f *fakeDrive) ValidateUpload(mimeType string, size int64) error {
	return f.real.ValidateUpload(mimeType, size)
}

func (f *fakeDrive) Upload(ctx context.Context, data []byte, filename, mimeType, accessToken string) (*models.DriveFile, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploaded = append(f.uploaded, filename)
	return &models.DriveFile{ID: "file-123", PublicURL: "https://drive.google.com/thumbnail?id=file-123&sz=w1000"}, nil
}

func (f *fakeDrive) Remove(ctx context.Context, fileID, accessToken string) {
	f.removed = append(f.removed, fileID)
	f.removedTok = append(f.removedTok, accessToken)
}

// fakeSessions serves a single known session.
type fakeSessions struct {
	sessionID string
	data      models.SessionData
	token     string
	tokenErr  error
	destroyed []string
}

var _ session.ManagerInterface = (*fakeSessions)(nil)

func (f *fakeSessions) Get(ctx context.Context, sessionID string) (models.SessionData, error) {
	if sessionID != f.sessionID {
		return models.SessionData{}, models.ErrNoSession
	}
	return f.data, nil
}

func (f *fakeSessions) AccessToken(ctx context.Context, sessionID string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	if sessionID != f.sessionID {
		return "", models.ErrNoSession
	}
	return f.token, nil
}

func (f *fakeSessions) Destroy(ctx context.Context, sessionID string) error {
	f.destroyed = append(f.destroyed, sessionID)
	return nil
}

// withSession attaches a validly signed session cookie to the request.
func withSession(r *http.Request, sessionID string) *http.Request {
	r.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: session.SignSessionID(testSecret, sessionID),
	})
	return r
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
