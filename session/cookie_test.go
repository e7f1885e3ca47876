package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignAndVerifySessionID(t *testing.T) {
	value := SignSessionID("secret", "sess-1")
	assert.Equal(t, "sess-1", VerifySessionID("secret", value))
}

func TestVerifyRejectsTampering(t *testing.T) {
	value := SignSessionID("secret", "sess-1")

	assert.Empty(t, VerifySessionID("other-secret", value))
	assert.Empty(t, VerifySessionID("secret", "sess-2."+value[len("sess-1."):]))
	assert.Empty(t, VerifySessionID("secret", "no-signature"))
	assert.Empty(t, VerifySessionID("secret", ""))
}

func TestIDFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, IDFromRequest(r, "secret"))

	r.AddCookie(&http.Cookie{Name: CookieName, Value: SignSessionID("secret", "sess-1")})
	assert.Equal(t, "sess-1", IDFromRequest(r, "secret"))
}

func TestSetAndClearCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "secret", "sess-1", true)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, "sess-1", VerifySessionID("secret", cookies[0].Value))

	w = httptest.NewRecorder()
	ClearCookie(w)
	cookies = w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
