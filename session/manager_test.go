package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"catalogo-pro/models"
)

// fakeTokenEndpoint counts refresh calls and serves fresh access tokens.
type fakeTokenEndpoint struct {
	calls atomic.Int64
	fail  bool
}

func (f *fakeTokenEndpoint) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		if f.fail {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"refreshed-token","token_type":"Bearer","expires_in":3600}`)
	}
}

func setupManager(t *testing.T, endpoint *fakeTokenEndpoint) (*Manager, *Store) {
	s := miniredis.RunT(t)
	store, err := NewStore("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(endpoint.handler())
	t.Cleanup(srv.Close)

	cfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: srv.URL},
	}
	return NewManager(store, cfg), store
}

func saveSession(t *testing.T, store *Store, expiresAt time.Time) string {
	t.Helper()
	sessionID := "sess-1"
	require.NoError(t, store.Save(context.Background(), sessionID, models.SessionData{
		Email:        "a@x.com",
		AccessToken:  "stale-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    expiresAt,
	}))
	return sessionID
}

func TestAccessTokenFreshTokenNoRefresh(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)
	sessionID := saveSession(t, store, time.Now().Add(10*time.Minute))

	token, err := manager.AccessToken(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "stale-token", token)
	require.EqualValues(t, 0, endpoint.calls.Load())
}

func TestAccessTokenNearExpiryRefreshesOnce(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)
	sessionID := saveSession(t, store, time.Now().Add(2*time.Minute))

	token, err := manager.AccessToken(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "refreshed-token", token)
	require.EqualValues(t, 1, endpoint.calls.Load())

	// The refreshed expiry is persisted, so a second call needs no refresh
	token, err = manager.AccessToken(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "refreshed-token", token)
	require.EqualValues(t, 1, endpoint.calls.Load())
}

func TestAccessTokenZeroExpiryRefreshes(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)
	sessionID := saveSession(t, store, time.Time{})

	token, err := manager.AccessToken(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "refreshed-token", token)
	require.EqualValues(t, 1, endpoint.calls.Load())
}

func TestAccessTokenRefreshFailureKeepsStaleToken(t *testing.T) {
	endpoint := &fakeTokenEndpoint{fail: true}
	manager, store := setupManager(t, endpoint)
	sessionID := saveSession(t, store, time.Now().Add(2*time.Minute))

	token, err := manager.AccessToken(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "stale-token", token)
	require.EqualValues(t, 1, endpoint.calls.Load())

	// The session record is untouched
	data, err := store.Lookup(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "stale-token", data.AccessToken)
	require.Equal(t, "refresh-token", data.RefreshToken)
}

func TestAccessTokenNoRefreshTokenKeepsStaleToken(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)
	sessionID := "sess-1"
	require.NoError(t, store.Save(context.Background(), sessionID, models.SessionData{
		Email:       "a@x.com",
		AccessToken: "stale-token",
	}))

	token, err := manager.AccessToken(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "stale-token", token)
	require.EqualValues(t, 0, endpoint.calls.Load())
}

func TestAccessTokenMissingSession(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, _ := setupManager(t, endpoint)

	_, err := manager.AccessToken(context.Background(), "nope")
	require.ErrorIs(t, err, models.ErrNoSession)
}

func TestConcurrentRefreshesAreSingleFlight(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)
	sessionID := saveSession(t, store, time.Now().Add(2*time.Minute))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := manager.AccessToken(context.Background(), sessionID)
			assert.NoError(t, err)
			assert.Equal(t, "refreshed-token", token)
		}()
	}
	wg.Wait()

	// The first caller refreshes and persists the new expiry; the others
	// serialize behind the per-session lock and see a fresh token.
	require.EqualValues(t, 1, endpoint.calls.Load())
}

func TestCreateAndDestroy(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}
	sessionID, err := manager.Create(context.Background(), "a@x.com", token)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	data, err := manager.Get(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", data.Email)

	require.NoError(t, manager.Destroy(context.Background(), sessionID))
	_, err = store.Lookup(context.Background(), sessionID)
	require.ErrorIs(t, err, models.ErrNoSession)
}

func TestCreateDefaultsExpiryWhenProviderOmitsIt(t *testing.T) {
	endpoint := &fakeTokenEndpoint{}
	manager, store := setupManager(t, endpoint)

	before := time.Now()
	sessionID, err := manager.Create(context.Background(), "a@x.com", &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
	})
	require.NoError(t, err)

	data, err := store.Lookup(context.Background(), sessionID)
	require.NoError(t, err)
	require.False(t, data.ExpiresAt.IsZero())
	require.True(t, data.ExpiresAt.After(before.Add(defaultTokenLifetime-time.Minute)))
}
