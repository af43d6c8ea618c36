package middleware

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

const flashCookieName = "presenca_flash"

// flashCodec signs flash cookies so notices cannot be forged client-side.
var flashCodec *securecookie.SecureCookie

// InitFlash configures the flash cookie codec with the app secret key.
// Must be called once before any flash is set or read.
// PRE: key is 32 bytes
func InitFlash(key []byte) {
	flashCodec = securecookie.New(key, nil)
}

// SetFlash stores a one-time user-facing notice in a signed cookie.
// PRE: InitFlash has been called
// POST: The next rendered page pops the notice
func SetFlash(w http.ResponseWriter, message string) {
	if flashCodec == nil {
		return
	}
	encoded, err := flashCodec.Encode(flashCookieName, message)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   60,
	})
}

// PopFlash reads and clears the pending notice, if any.
// POST: Returns the notice or ""; the cookie is expired either way
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || flashCodec == nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
	var message string
	if err := flashCodec.Decode(flashCookieName, cookie.Value, &message); err != nil {
		return ""
	}
	return message
}
