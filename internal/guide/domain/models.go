package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Service is a university service with stepwise guidance.
type Service struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `gorm:"not null;default:''" json:"description"`
	VideoURL    string       `gorm:"column:video_url;not null;default:''" json:"video_url,omitempty"`
	Steps       []Step       `gorm:"foreignKey:ServiceID" json:"steps,omitempty"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Service) TableName() string { return "services" }

// Step is one stage of a service's guidance, independently rateable.
type Step struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	ServiceID snowflake.ID `gorm:"column:service_id;not null;index" json:"service_id"`
	Position  int          `gorm:"not null" json:"position"`
	Title     string       `gorm:"not null" json:"title"`
	Body      string       `gorm:"not null;default:''" json:"body"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Step) TableName() string { return "service_steps" }
