package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Feedback is one user rating of a service step.
//
// CreatedAt is deliberately a raw string: rows imported from the legacy
// portal carry timestamps in several formats (RFC3339, locale strings).
// The report subsystem normalizes them; new rows are written as RFC3339.
type Feedback struct {
	ID          snowflake.ID  `gorm:"primaryKey" json:"id"`
	UserID      *snowflake.ID `gorm:"column:user_id" json:"user_id,omitempty"`
	UserEmail   *string       `gorm:"column:user_email" json:"user_email,omitempty"`
	ServiceID   snowflake.ID  `gorm:"column:service_id;not null;index" json:"service_id"`
	ServiceName string        `gorm:"column:service_name;not null;default:''" json:"service_name"`
	StepNumber  *int          `gorm:"column:step_number" json:"step_number,omitempty"`
	Rating      int           `gorm:"not null" json:"rating"`
	Comment     string        `gorm:"not null;default:''" json:"comment"`
	CreatedAt   string        `gorm:"column:created_at;not null;default:''" json:"created_at"`
}

// TableName sets the database table name.
func (Feedback) TableName() string { return "feedback" }

type SubmitRequest struct {
	UserID     snowflake.ID
	UserEmail  string
	ServiceID  string
	StepNumber *int
	Rating     int
	Comment    string
}

type ListRequest struct {
	ServiceID string
	StepID    string
}

type Service interface {
	Submit(context.Context, SubmitRequest) (Feedback, error)
	// List returns feedback for a service (optionally one step), newest
	// first. Out-of-range ratings are included in raw listings.
	List(context.Context, ListRequest) ([]Feedback, error)
	// ListAll returns every record, optionally filtered by service,
	// for the admin analytics views.
	ListAll(ctx context.Context, serviceID string) ([]Feedback, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, feedback *Feedback) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Feedback, error)
	ListByService(ctx context.Context, db *gorm.DB, serviceID snowflake.ID, stepNumber *int) ([]Feedback, error)
	ListAll(ctx context.Context, db *gorm.DB, serviceID *snowflake.ID) ([]Feedback, error)
}

var (
	ErrInvalidRating  = errors.New("invalid_rating")
	ErrInvalidService = errors.New("invalid_service")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
