// Package otp manages the one-time codes used for email verification
// and password reset.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
)

const (
	PurposeVerifyEmail   = "verify_email"
	PurposePasswordReset = "password_reset"

	codeDigits  = 6
	maxAttempts = 5

	// DefaultTTL bounds how long an issued code stays redeemable.
	DefaultTTL = 10 * time.Minute
)

// Store persists issued codes. Implementations must expire entries at TTL.
type Store interface {
	Put(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, ttl: DefaultTTL}
}

// Issue generates a fresh numeric code, replacing any previous one.
func (m *Manager) Issue(ctx context.Context, purpose, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	key := storageKey(purpose, email)
	if err := m.store.Delete(ctx, attemptsKey(purpose, email)); err != nil {
		return "", err
	}
	if err := m.store.Put(ctx, key, code, m.ttl); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the submitted code, consuming it on success.
// Attempt counting caps brute-force probing per issued code.
func (m *Manager) Verify(ctx context.Context, purpose, email, submitted string) error {
	attempts, err := m.store.IncrAttempts(ctx, attemptsKey(purpose, email), m.ttl)
	if err != nil {
		return err
	}
	if attempts > maxAttempts {
		return authdomain.ErrTooManyAttempts
	}

	key := storageKey(purpose, email)
	stored, err := m.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if stored == "" {
		return authdomain.ErrOTPExpired
	}
	if stored != submitted {
		return authdomain.ErrOTPMismatch
	}

	_ = m.store.Delete(ctx, key)
	_ = m.store.Delete(ctx, attemptsKey(purpose, email))
	return nil
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}

func storageKey(purpose, email string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, email)
}

func attemptsKey(purpose, email string) string {
	return fmt.Sprintf("otp_attempts:%s:%s", purpose, email)
}
