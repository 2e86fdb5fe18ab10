package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uniguide/uniguide/internal/config"
)

const DefaultCookieName = "_uid"

// Manager manages the session token cookie.
type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
	}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// ReadToken returns the session token from the cookie or, as a fallback,
// from a Bearer authorization header.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(m.cookieName)
	if err == nil && strings.TrimSpace(token) != "" {
		return token, true
	}

	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		after = strings.TrimSpace(after)
		if after != "" {
			return after, true
		}
	}

	return "", false
}

func (m *Manager) Set(c *gin.Context, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, value, maxAge, "/", "", m.secure, true)
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}
