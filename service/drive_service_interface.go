package service

import (
	"context"

	"catalogo-pro/models"
)

// DriveServiceInterface defines the contract for Google Drive image
// storage operations.
type DriveServiceInterface interface {
	ValidateUpload(mimeType string, size int64) error
	Upload(ctx context.Context, data []byte, filename, mimeType, accessToken string) (*models.DriveFile, error)
	Remove(ctx context.Context, fileID, accessToken string)
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)
