// Package session moves the signed session token between HTTP responses
// and requests via a hardened cookie.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

const defaultMaxAge = 15 * time.Minute

// Manager sets, reads, and clears the session cookie. Secure should be
// enabled in production so the cookie is only sent over TLS.
type Manager struct {
	secure bool
	maxAge time.Duration
}

func NewManager(secure bool) *Manager {
	return &Manager{secure: secure, maxAge: defaultMaxAge}
}

// Set attaches the token as an HTTP-only cookie with a fixed expiry window.
func (m *Manager) Set(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Get returns the token carried by the request, or false when absent.
func (m *Manager) Get(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear removes the cookie by expiring it immediately.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
