package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// CookieName is the session cookie. Its value is the opaque session ID
// plus an HMAC signature; the session data itself lives server-side.
const CookieName = "catalogo_session"

// SignSessionID returns the cookie value for a session ID: the ID plus a
// dot-separated HMAC-SHA256 signature keyed on the auth secret.
func SignSessionID(secret, sessionID string) string {
	return sessionID + "." + signature(secret, sessionID)
}

// VerifySessionID validates a cookie value and returns the session ID.
// Tampered or malformed values return "".
func VerifySessionID(secret, value string) string {
	sessionID, sig, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" {
		return ""
	}
	if !hmac.Equal([]byte(sig), []byte(signature(secret, sessionID))) {
		return ""
	}
	return sessionID
}

func signature(secret, sessionID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}

// IDFromRequest extracts and verifies the session ID from the request
// cookie. Returns "" when the cookie is absent or invalid.
func IDFromRequest(r *http.Request, secret string) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return VerifySessionID(secret, cookie.Value)
}

// SetCookie writes the session cookie.
func SetCookie(w http.ResponseWriter, secret, sessionID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    SignSessionID(secret, sessionID),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
