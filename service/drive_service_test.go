package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"catalogo-pro/models"
)

func TestValidateUpload(t *testing.T) {
	ds := NewDriveService("")

	tests := []struct {
		name     string
		mimeType string
		size     int64
		wantErr  bool
	}{
		{"small jpeg", "image/jpeg", 1 << 20, false},
		{"png at limit", "image/png", maxUploadSize, false},
		{"webp", "image/webp", 500, false},
		{"mixed case mime", "IMAGE/PNG", 500, false},
		{"oversized jpeg", "image/jpeg", 15 << 20, true},
		{"pdf", "application/pdf", 500, true},
		{"svg", "image/svg+xml", 500, true},
		{"empty mime", "", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ds.ValidateUpload(tt.mimeType, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *models.ValidationError
				assert.True(t, errors.As(err, &vErr), "want a validation error, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUploadRejectsBeforeNetwork(t *testing.T) {
	ds := NewDriveService("folder-1")

	_, err := ds.Upload(context.Background(), make([]byte, 100), "x.pdf", "application/pdf", "token")
	var vErr *models.ValidationError
	require.True(t, errors.As(err, &vErr))

	_, err = ds.Upload(context.Background(), make([]byte, 100), "x.png", "image/png", "")
	assert.ErrorIs(t, err, models.ErrSessionExpired)
}

func TestMapDriveError(t *testing.T) {
	assert.ErrorIs(t, mapDriveError(&googleapi.Error{Code: 401}), models.ErrSessionExpired)

	scopeErr := &googleapi.Error{Code: 403, Message: "Request had insufficient authentication scopes."}
	assert.ErrorIs(t, mapDriveError(scopeErr), models.ErrScope)

	bodyScopeErr := &googleapi.Error{Code: 403, Body: `{"error":{"message":"insufficient authentication scopes"}}`}
	assert.ErrorIs(t, mapDriveError(bodyScopeErr), models.ErrScope)

	quotaErr := &googleapi.Error{Code: 403, Message: "User rate limit exceeded"}
	err := mapDriveError(quotaErr)
	assert.NotErrorIs(t, err, models.ErrScope)
	assert.ErrorIs(t, err, quotaErr)

	plain := fmt.Errorf("connection reset")
	err = mapDriveError(plain)
	assert.ErrorIs(t, err, plain)
	assert.NotErrorIs(t, err, models.ErrSessionExpired)
}
