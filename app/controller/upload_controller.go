package controller

import (
	"errors"
	"io"
	"log"
	"net/http"

	"catalogo-pro/models"
	"catalogo-pro/service"
	"catalogo-pro/session"
)

// maxUploadMemory bounds multipart parsing; the Drive adapter enforces
// the actual 10MB file limit.
const maxUploadMemory = 16 << 20

// UploadController handles POST /api/upload: image uploads to Drive with
// the signed-in admin's access token.
type UploadController struct {
	drive        service.DriveServiceInterface
	sessions     session.ManagerInterface
	cookieSecret string
}

// NewUploadController creates a new UploadController.
func NewUploadController(drive service.DriveServiceInterface, sessions session.ManagerInterface, cookieSecret string) *UploadController {
	return &UploadController{
		drive:        drive,
		sessions:     sessions,
		cookieSecret: cookieSecret,
	}
}

// Upload handles POST /api/upload (multipart, field "file").
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := session.IDFromRequest(r, c.cookieSecret)
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	// AccessToken refreshes near-expiry tokens before the upload
	accessToken, err := c.sessions.AccessToken(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return
	}
	if accessToken == "" {
		writeError(w, http.StatusUnauthorized, "Token de acceso no disponible. Por favor, inicia sesión nuevamente.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Formulario no válido")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No se proporcionó ningún archivo")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")

	// Validate type and size before reading or touching the network
	if err := c.drive.ValidateUpload(mimeType, header.Size); err != nil {
		c.writeUploadError(w, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ Upload: failed to read file: %v", err)
		writeError(w, http.StatusInternalServerError, "Error al subir el archivo")
		return
	}

	data, mimeType = service.OptimizeUpload(data, mimeType)

	driveFile, err := c.drive.Upload(r.Context(), data, header.Filename, mimeType, accessToken)
	if err != nil {
		log.Printf("❌ Upload: %v", err)
		c.writeUploadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"url":     driveFile.PublicURL,
		"fileId":  driveFile.ID,
	})
}

// writeUploadError maps the error taxonomy to HTTP statuses. A scope
// error carries requiresReauth so the UI prompts a full re-login.
func (c *UploadController) writeUploadError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, models.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, "Sesión expirada. Por favor, inicia sesión nuevamente.")
	case errors.Is(err, models.ErrScope):
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"error":          "Por favor, cierra sesión y vuelve a iniciar sesión para otorgar permisos de Google Drive.",
			"requiresReauth": true,
		})
	default:
		writeError(w, http.StatusInternalServerError, "Error al subir el archivo")
	}
}
