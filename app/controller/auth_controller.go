package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"catalogo-pro/auth"
	"catalogo-pro/session"
)

// stateCookie carries the OAuth CSRF state between signin and callback.
const stateCookie = "catalogo_oauth_state"

// AuthController handles the Google OAuth sign-in flow. The allow-list is
// checked here at the callback, independently of the page middleware:
// both layers must deny on their own.
type AuthController struct {
	oauth         *oauth2.Config
	allowlist     auth.Allowlist
	sessions      *session.Manager
	cookieSecret  string
	secureCookies bool
}

// NewAuthController creates a new AuthController.
func NewAuthController(
	oauthCfg *oauth2.Config,
	allowlist auth.Allowlist,
	sessions *session.Manager,
	cookieSecret string,
	secureCookies bool,
) *AuthController {
	return &AuthController{
		oauth:         oauthCfg,
		allowlist:     allowlist,
		sessions:      sessions,
		cookieSecret:  cookieSecret,
		secureCookies: secureCookies,
	}
}

// SignIn handles GET /auth/signin: redirects to the Google consent
// screen. access_type=offline plus prompt=consent makes Google return a
// refresh token, which the session manager needs for silent renewal.
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(10 * time.Minute),
	})

	url := c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	http.Redirect(w, r, url, http.StatusFound)
}

// Callback handles GET /auth/callback: state check, code exchange,
// allow-list check, session creation.
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	stateParam := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || stateParam == "" || cookie.Value != stateParam {
		log.Printf("❌ OAuth callback: state mismatch")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		// User cancelled the consent screen
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	token, err := c.oauth.Exchange(r.Context(), code)
	if err != nil {
		log.Printf("❌ OAuth callback: code exchange failed: %v", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	userInfo, err := auth.FetchUserInfo(r.Context(), token.AccessToken)
	if err != nil {
		log.Printf("❌ OAuth callback: userinfo fetch failed: %v", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if !c.allowlist.Allow(userInfo.Email) {
		log.Printf("⚠️  Sign-in rejected for %s: not in allow-list", userInfo.Email)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sessionID, err := c.sessions.Create(r.Context(), userInfo.Email, token)
	if err != nil {
		log.Printf("❌ OAuth callback: failed to create session: %v", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	session.SetCookie(w, c.cookieSecret, sessionID, c.secureCookies)
	log.Printf("✅ Admin signed in: %s", userInfo.Email)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// SignOut handles GET /auth/signout: revokes the session and clears the
// cookie.
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	if sessionID := session.IDFromRequest(r, c.cookieSecret); sessionID != "" {
		if err := c.sessions.Destroy(r.Context(), sessionID); err != nil {
			log.Printf("❌ SignOut: failed to revoke session: %v", err)
		}
	}
	session.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
