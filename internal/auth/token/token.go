// Package token issues and verifies the signed session tokens carrying
// the portal role claim.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
)

type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue signs a session token for the user.
func (i *Issuer) Issue(user *authdomain.User, now time.Time) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, authdomain.ErrInvalidToken
	}

	expiresAt := now.Add(i.ttl)
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Decode verifies the signature and extracts the role claim set.
// A malformed, tampered or expired token never yields partial claims.
func (i *Issuer) Decode(raw string) (*authdomain.Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, authdomain.ErrInvalidToken
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, authdomain.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authdomain.ErrTokenExpired
		}
		return nil, authdomain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, authdomain.ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authdomain.ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := snowflake.ParseString(sub)
	if err != nil || userID == 0 {
		return nil, authdomain.ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)
	if !authdomain.ValidRole(role) {
		return nil, authdomain.ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)

	return &authdomain.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}
