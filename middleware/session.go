package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ISSA5922/ambertek-export/i18n"
)

const (
	// SessionCookie carries the opaque ID that keys the session cart.
	SessionCookie = "ambertek_session"
	// LocaleCookie carries the chosen storefront language.
	LocaleCookie = "ambertek_language"

	sessionMaxAge = 60 * 60 * 24 * 14

	sessionKey = "session_id"
	localeKey  = "locale"
	userIDKey  = "user_id"
)

// EnsureSession issues the opaque session cookie on first contact and puts
// the session ID into the request context.
func EnsureSession(c *gin.Context) {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
	}
	c.Set(sessionKey, id)
	c.Next()
}

// SessionID returns the caller's opaque session ID, or "" when the session
// middleware did not run (treated everywhere as an empty cart).
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// ResolveLocale reads the language from the lang query parameter (which
// also re-sets the cookie, this is the language switcher) or the locale
// cookie, and normalizes it to a supported locale.
func ResolveLocale(c *gin.Context) {
	raw := c.Query("lang")
	if raw != "" {
		c.SetCookie(LocaleCookie, string(i18n.Normalize(raw)), sessionMaxAge, "/", "", false, false)
	} else {
		raw, _ = c.Cookie(LocaleCookie)
	}
	c.Set(localeKey, i18n.Normalize(raw))
	c.Next()
}

// Locale returns the request's locale, defaulting to English.
func Locale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if loc, ok := v.(i18n.Locale); ok {
			return loc
		}
	}
	return i18n.English
}
