package models

import "time"

// SessionData is what the session store keeps per signed-in admin. Only
// the access token is ever handed to downstream handlers; the refresh
// token never leaves the server.
type SessionData struct {
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	// ExpiresAt is when the access token expires. A zero value means the
	// lifetime is unknown and the token is treated as expired.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
