package token

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
)

func testUser() *authdomain.User {
	return &authdomain.User{
		ID:    snowflake.ID(42),
		Email: "student@campus.edu",
		Role:  authdomain.RoleUser,
	}
}

func TestIssueAndDecodeRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	raw, expiresAt, err := issuer.Issue(testUser(), time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(expiresAt) < 55*time.Minute {
		t.Errorf("expiry %v too soon", expiresAt)
	}

	claims, err := issuer.Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != snowflake.ID(42) {
		t.Errorf("user id = %v", claims.UserID)
	}
	if claims.Email != "student@campus.edu" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != authdomain.RoleUser {
		t.Errorf("role = %q", claims.Role)
	}
}

func TestDecodeRejectsTamperedToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("different-secret", time.Hour)

	raw, _, err := other.Issue(testUser(), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := issuer.Decode(raw); err != authdomain.ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	raw, _, err := issuer.Issue(testUser(), time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := issuer.Decode(raw); err != authdomain.ErrTokenExpired {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	for _, raw := range []string{"", "   ", "not.a.token"} {
		if _, err := issuer.Decode(raw); err != authdomain.ErrInvalidToken {
			t.Errorf("Decode(%q) err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestDecodeRejectsUnknownRole(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	user := testUser()
	user.Role = "superuser"
	raw, _, err := issuer.Issue(user, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := issuer.Decode(raw); err != authdomain.ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
