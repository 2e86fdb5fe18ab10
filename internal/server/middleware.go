package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
	"github.com/uniguide/uniguide/internal/gate"
)

const contextClaimsKey = "session_claims"

// AuthRequired decodes the session token and stores the role claims on
// the request context. A token that fails to decode is removed before
// rejecting, so the client does not keep replaying it.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.authsvc.Authenticate(c.Request.Context(), raw)
		if err != nil {
			s.sessions.Clear(c)
			AbortWithError(c, err)
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// RequireArea applies the navigation gate to the request path. Denied
// requests get a 403 carrying the redirect target and notice so the
// client can route the user to their own area.
func (s *Server) RequireArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := s.claimsFromContext(c)

		decision := gate.Decide(claims, c.Request.URL.Path)
		switch decision.Outcome {
		case gate.Permit:
			c.Next()
		case gate.RedirectHome:
			s.sessions.Clear(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"redirect": decision.Redirect,
			})
		case gate.RedirectRoleArea:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"redirect": decision.Redirect,
				"notice":   decision.Notice,
			})
		}
	}
}

// LoginRateLimit throttles credential attempts per client address.
func (s *Server) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.loginLimiter == nil {
			c.Next()
			return
		}

		key := "ratelimit:login:" + strings.TrimSpace(c.ClientIP())
		res, err := s.loginLimiter.Allow(c.Request.Context(), key, 0.2, 5)
		if err != nil {
			// Redis being down must not lock everyone out.
			s.log.Warn("login rate limit check failed")
			c.Next()
			return
		}
		if !res.Allowed {
			c.Header("Retry-After", formatSeconds(res.RetryAfter))
			AbortWithError(c, ErrTooManyReq)
			return
		}
		c.Next()
	}
}

func formatSeconds(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

func (s *Server) claimsFromContext(c *gin.Context) (*authdomain.Claims, bool) {
	value, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*authdomain.Claims)
	return claims, ok && claims != nil
}
