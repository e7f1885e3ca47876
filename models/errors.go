package models

import "errors"

// ValidationError is bad client input (shape, size, type). Controllers
// surface it as HTTP 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a user-facing message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

var (
	// ErrNoSession means the request carries no valid session (HTTP 401).
	ErrNoSession = errors.New("no hay sesión activa")

	// ErrSessionExpired means the upstream rejected the access token and a
	// new sign-in is required (HTTP 401).
	ErrSessionExpired = errors.New("sesión expirada, inicia sesión nuevamente")

	// ErrScope means the OAuth token lacks a required permission grant.
	// Controllers surface it as HTTP 403 with requiresReauth so the UI
	// prompts a full re-login (HTTP 403).
	ErrScope = errors.New("el token no tiene permisos de Google Drive")
)
