package auth

import (
	"context"
	"log"
	"net/http"

	"catalogo-pro/models"
	"catalogo-pro/session"
)

// Gate protects admin page routes. It is one of two independent checks:
// the OAuth callback re-validates the allow-list before a session is ever
// created, so neither layer alone is authoritative.
type Gate struct {
	allowlist Allowlist
	sessions  session.ManagerInterface
	secret    string
}

// NewGate creates the admin gate.
func NewGate(allowlist Allowlist, sessions session.ManagerInterface, cookieSecret string) *Gate {
	return &Gate{
		allowlist: allowlist,
		sessions:  sessions,
		secret:    cookieSecret,
	}
}

// Session resolves the request's session. Returns models.ErrNoSession
// when the cookie is absent, invalid or the record expired.
func (g *Gate) Session(r *http.Request) (string, models.SessionData, error) {
	sessionID := session.IDFromRequest(r, g.secret)
	if sessionID == "" {
		return "", models.SessionData{}, models.ErrNoSession
	}
	data, err := g.sessions.Get(r.Context(), sessionID)
	if err != nil {
		return "", models.SessionData{}, err
	}
	return sessionID, data, nil
}

// AccessToken returns the request session's access token, refreshing it
// near expiry.
func (g *Gate) AccessToken(ctx context.Context, sessionID string) (string, error) {
	return g.sessions.AccessToken(ctx, sessionID)
}

// RequireAdmin wraps a handler for /admin pages. Requests without a
// session are redirected to sign-in; sessions whose email is no longer
// allowed are revoked and sent back to the storefront.
func (g *Gate) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, data, err := g.Session(r)
		if err != nil {
			http.Redirect(w, r, "/auth/signin", http.StatusFound)
			return
		}

		if !g.allowlist.Allow(data.Email) {
			log.Printf("⚠️  Admin access denied for %s, revoking session", data.Email)
			if err := g.sessions.Destroy(r.Context(), sessionID); err != nil {
				log.Printf("❌ Failed to revoke session: %v", err)
			}
			session.ClearCookie(w)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next(w, r)
	}
}
