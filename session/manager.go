package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"catalogo-pro/models"
)

const (
	// refreshWindow is how close to expiry a token may get before a
	// refresh is attempted.
	refreshWindow = 5 * time.Minute

	// defaultTokenLifetime is assumed when the provider does not report
	// an expiry for a refreshed token.
	defaultTokenLifetime = time.Hour
)

// Manager owns the session lifecycle: creation at OAuth callback, access
// token refresh near expiry, and destruction at sign-out.
type Manager struct {
	store *Store
	oauth *oauth2.Config

	// Per-session locks so concurrent requests don't race to refresh the
	// same token.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates a session manager. The oauth2 config is used for
// token refresh against the provider's token endpoint.
func NewManager(store *Store, oauthCfg *oauth2.Config) *Manager {
	return &Manager{
		store: store,
		oauth: oauthCfg,
		locks: make(map[string]*sync.Mutex),
	}
}

// Create stores a new session for an authenticated email and returns the
// opaque session ID.
func (m *Manager) Create(ctx context.Context, email string, token *oauth2.Token) (string, error) {
	sessionID := uuid.NewString()

	expiresAt := token.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultTokenLifetime)
	}

	data := models.SessionData{
		Email:        email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
	}

	if err := m.store.Save(ctx, sessionID, data); err != nil {
		return "", err
	}

	return sessionID, nil
}

// Get returns the session record for an ID.
func (m *Manager) Get(ctx context.Context, sessionID string) (models.SessionData, error) {
	return m.store.Lookup(ctx, sessionID)
}

// AccessToken returns the current access token for a session, refreshing
// it first when it is expired or within the refresh window. Exactly one
// refresh attempt is made; on failure the stale token is returned and the
// next privileged call will fail upstream, forcing a re-login.
func (m *Manager) AccessToken(ctx context.Context, sessionID string) (string, error) {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	data, err := m.store.Lookup(ctx, sessionID)
	if err != nil {
		return "", err
	}

	if data.ExpiresAt.IsZero() || time.Until(data.ExpiresAt) < refreshWindow {
		m.refresh(ctx, sessionID, &data)
	}

	return data.AccessToken, nil
}

// Destroy removes a session.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.locks, sessionID)
	m.mu.Unlock()
	return m.store.Revoke(ctx, sessionID)
}

// refresh performs one synchronous refresh attempt. On failure the session
// is left unchanged.
func (m *Manager) refresh(ctx context.Context, sessionID string, data *models.SessionData) {
	if data.RefreshToken == "" {
		return
	}

	source := m.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: data.RefreshToken})
	token, err := source.Token()
	if err != nil {
		log.Printf("⚠️  Token refresh failed for %s: %v", data.Email, err)
		return
	}

	data.AccessToken = token.AccessToken
	if token.Expiry.IsZero() {
		data.ExpiresAt = time.Now().Add(defaultTokenLifetime)
	} else {
		data.ExpiresAt = token.Expiry
	}
	// Google usually omits the refresh token on refresh responses
	if token.RefreshToken != "" {
		data.RefreshToken = token.RefreshToken
	}

	if err := m.store.Save(ctx, sessionID, *data); err != nil {
		log.Printf("⚠️  Failed to persist refreshed token for %s: %v", data.Email, err)
		return
	}

	log.Printf("✓ Access token refreshed for %s", data.Email)
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}
