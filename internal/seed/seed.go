package seed

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	authdomain "github.com/uniguide/uniguide/internal/auth/domain"
	"github.com/uniguide/uniguide/internal/auth/password"
)

// EnsureDefaultAdmin creates the bootstrap admin account when ADMIN_EMAIL
// and ADMIN_PASSWORD are set and no user with that email exists yet.
func EnsureDefaultAdmin(conn *gorm.DB, genID *snowflake.Node) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	secret := os.Getenv("ADMIN_PASSWORD")
	if email == "" || secret == "" {
		return nil
	}

	var existing authdomain.User
	err := conn.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := password.Hash(secret)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := authdomain.User{
		ID:            genID.Generate(),
		Email:         email,
		Name:          "Administrator",
		PasswordHash:  &hash,
		Role:          authdomain.RoleAdmin,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return conn.Create(&admin).Error
}
