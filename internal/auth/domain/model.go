// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a portal account.
type User struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	Email         string            `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Name          string            `gorm:"column:name;not null;default:''" json:"name"`
	PasswordHash  *string           `gorm:"type:text" json:"-"`
	Role          string            `gorm:"column:role;not null;default:'user'" json:"role"`
	EmailVerified bool              `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// ValidRole reports whether the value is a recognized role claim.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
