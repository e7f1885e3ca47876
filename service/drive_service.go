package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"catalogo-pro/models"
	"catalogo-pro/utils"
)

// maxUploadSize is the upload limit enforced before any network call.
const maxUploadSize = 10 * 1024 * 1024 // 10MB

// validImageTypes is the MIME allow-set for uploads.
var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// DriveService uploads and deletes catalog images in Google Drive. Unlike
// the Sheets service it acts with the signed-in admin's OAuth access
// token, not the service account, so files land in the admin's Drive.
type DriveService struct {
	folderID string
}

// NewDriveService creates a DriveService. folderID is the optional parent
// folder for uploads; files go to the Drive root when empty.
func NewDriveService(folderID string) *DriveService {
	return &DriveService{folderID: folderID}
}

// clientFor builds a Drive client bound to one access token.
func (ds *DriveService) clientFor(ctx context.Context, accessToken string) (*drive.Service, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	client, err := drive.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return client, nil
}

// ValidateUpload checks MIME type and size. It runs before any network
// call so oversized or non-image uploads are rejected locally.
func (ds *DriveService) ValidateUpload(mimeType string, size int64) error {
	if !validImageTypes[strings.ToLower(mimeType)] {
		return models.NewValidationError("Tipo de archivo no válido. Solo se permiten imágenes (JPEG, PNG, GIF, WebP)")
	}
	if size > maxUploadSize {
		return models.NewValidationError("El archivo es demasiado grande. Tamaño máximo: 10MB")
	}
	return nil
}

// Upload stores an image in Drive, makes it publicly readable and returns
// the file ID plus a thumbnail-service URL suitable for inline embedding.
func (ds *DriveService) Upload(ctx context.Context, data []byte, filename, mimeType, accessToken string) (*models.DriveFile, error) {
	if err := ds.ValidateUpload(mimeType, int64(len(data))); err != nil {
		return nil, err
	}
	if accessToken == "" {
		return nil, models.ErrSessionExpired
	}

	client, err := ds.clientFor(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	metadata := &drive.File{Name: filename}
	if ds.folderID != "" {
		metadata.Parents = []string{ds.folderID}
	}

	file, err := client.Files.Create(metadata).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return nil, mapDriveError(err)
	}

	// Public anyone-with-link read permission. A 409 means it already
	// exists, which is fine.
	_, err = client.Permissions.Create(file.Id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if !errors.As(err, &apiErr) || apiErr.Code != 409 {
			log.Printf("⚠️  Could not set public permission on %s: %v", file.Id, err)
		}
	}

	log.Printf("✅ Uploaded %s to Drive as %s", filename, file.Id)

	return &models.DriveFile{
		ID:        file.Id,
		PublicURL: utils.DriveThumbnailURL(file.Id),
	}, nil
}

// Remove deletes a file from Drive. Best-effort: any failure is logged
// and swallowed, since the caller's primary operation (the spreadsheet
// row delete) has already succeeded.
func (ds *DriveService) Remove(ctx context.Context, fileID, accessToken string) {
	if fileID == "" || accessToken == "" {
		log.Printf("⚠️  Cannot delete Drive file: missing fileId or access token")
		return
	}

	client, err := ds.clientFor(ctx, accessToken)
	if err != nil {
		log.Printf("❌ Failed to delete Drive file %s: %v", fileID, err)
		return
	}

	if err := client.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		log.Printf("❌ Failed to delete Drive file %s: %v", fileID, err)
		return
	}

	log.Printf("✅ Deleted Drive file %s", fileID)
}

// mapDriveError translates Drive API failures into the error taxonomy:
// 401 means the session token is no longer valid, 403 with a scope
// message means the token was granted without the drive.file scope.
func mapDriveError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("drive upload failed: %w", err)
	}

	switch apiErr.Code {
	case 401:
		return models.ErrSessionExpired
	case 403:
		if strings.Contains(apiErr.Message, "insufficient authentication scopes") ||
			strings.Contains(apiErr.Body, "insufficient authentication scopes") {
			return models.ErrScope
		}
	}
	return fmt.Errorf("drive upload failed: %w", err)
}
