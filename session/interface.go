package session

import (
	"context"

	"catalogo-pro/models"
)

// ManagerInterface defines the contract for session lookups from HTTP
// handlers. Only the access token is exposed; the refresh token stays
// inside the session package.
type ManagerInterface interface {
	Get(ctx context.Context, sessionID string) (models.SessionData, error)
	AccessToken(ctx context.Context, sessionID string) (string, error)
	Destroy(ctx context.Context, sessionID string) error
}

// Ensure Manager implements ManagerInterface
var _ ManagerInterface = (*Manager)(nil)
