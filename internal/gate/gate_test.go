package gate

import (
	"testing"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
)

func TestDecideNoToken(t *testing.T) {
	d := Decide(nil, "/admin/feedback")
	if d.Outcome != RedirectHome {
		t.Fatalf("expected RedirectHome, got %v", d.Outcome)
	}
	if d.Redirect != HomePath {
		t.Fatalf("expected redirect %q, got %q", HomePath, d.Redirect)
	}
	if d.Notice != "" {
		t.Fatalf("expected no notice, got %q", d.Notice)
	}
}

func TestDecideUserOnAdminPath(t *testing.T) {
	claims := &authdomain.Claims{Role: authdomain.RoleUser}

	d := Decide(claims, "/admin/users")
	if d.Outcome != RedirectRoleArea {
		t.Fatalf("expected RedirectRoleArea, got %v", d.Outcome)
	}
	if d.Redirect != UserArea {
		t.Fatalf("expected redirect to %q, got %q", UserArea, d.Redirect)
	}
	if d.Notice == "" {
		t.Fatal("expected a denial notice")
	}
}

func TestDecideAdminOnUserArea(t *testing.T) {
	claims := &authdomain.Claims{Role: authdomain.RoleAdmin}

	d := Decide(claims, "/services/42")
	if d.Outcome != RedirectRoleArea {
		t.Fatalf("expected RedirectRoleArea, got %v", d.Outcome)
	}
	if d.Redirect != AdminArea {
		t.Fatalf("expected redirect to %q, got %q", AdminArea, d.Redirect)
	}
	if d.Notice == "" {
		t.Fatal("expected a notice")
	}
}

func TestDecidePermit(t *testing.T) {
	admin := &authdomain.Claims{Role: authdomain.RoleAdmin}
	user := &authdomain.Claims{Role: authdomain.RoleUser}

	cases := []struct {
		name   string
		claims *authdomain.Claims
		path   string
	}{
		{"admin on admin path", admin, "/admin/feedback/report"},
		{"user on user area", user, "/services"},
		{"user on neutral path", user, "/profile"},
		{"admin on neutral path", admin, "/profile"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.claims, tc.path)
			if d.Outcome != Permit {
				t.Fatalf("expected Permit, got %v", d.Outcome)
			}
		})
	}
}

func TestDecideAdminPrefixBoundary(t *testing.T) {
	user := &authdomain.Claims{Role: authdomain.RoleUser}

	// "/administration" is not inside the admin area.
	d := Decide(user, "/administration")
	if d.Outcome != Permit {
		t.Fatalf("expected Permit for non-admin prefix path, got %v", d.Outcome)
	}
}
