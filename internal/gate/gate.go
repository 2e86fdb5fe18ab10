// Package gate decides whether a session may reach a navigation target.
package gate

import (
	"strings"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
)

// Outcome is the gate's decision for a (claims, path) pair.
type Outcome int

const (
	// Permit forwards the originally requested content.
	Permit Outcome = iota
	// RedirectHome sends the caller to the public landing page. Set when
	// there is no usable session.
	RedirectHome
	// RedirectRoleArea sends the caller to the default area for their
	// role, with a denial notice.
	RedirectRoleArea
)

const (
	AdminArea = "/admin"
	UserArea  = "/services"
	HomePath  = "/"
)

// Decision carries the outcome plus the target and notice the transport
// layer should surface.
type Decision struct {
	Outcome  Outcome
	Redirect string
	Notice   string
}

// Decide is a pure function over (claims, path). A nil claims value means
// no token or a token that failed to decode; the caller is responsible
// for clearing the stored token in that case.
func Decide(claims *authdomain.Claims, path string) Decision {
	if claims == nil {
		return Decision{Outcome: RedirectHome, Redirect: HomePath}
	}

	admin := claims.Role == authdomain.RoleAdmin
	if isAdminPath(path) && !admin {
		return Decision{
			Outcome:  RedirectRoleArea,
			Redirect: UserArea,
			Notice:   "You do not have access to the admin area.",
		}
	}
	if !isAdminPath(path) && admin && isUserAreaPath(path) {
		return Decision{
			Outcome:  RedirectRoleArea,
			Redirect: AdminArea,
			Notice:   "Administrators use the admin area.",
		}
	}

	return Decision{Outcome: Permit}
}

func isAdminPath(path string) bool {
	return path == AdminArea || strings.HasPrefix(path, AdminArea+"/")
}

func isUserAreaPath(path string) bool {
	return path == UserArea || strings.HasPrefix(path, UserArea+"/")
}
