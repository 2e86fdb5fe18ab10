package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Image is one entry of the landing-page carousel.
type Image struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Title     string       `gorm:"not null;default:''" json:"title"`
	ImageURL  string       `gorm:"column:image_url;not null" json:"image_url"`
	Position  int          `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Image) TableName() string { return "carousel_images" }

type CreateImageRequest struct {
	Title    string
	ImageURL string
	Position int
}

type UpdateImageRequest struct {
	ID       string
	Title    *string
	ImageURL *string
	Position *int
}

type Service interface {
	Create(context.Context, CreateImageRequest) (Image, error)
	Update(context.Context, UpdateImageRequest) (Image, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Image, error)
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, image *Image) error
	Update(ctx context.Context, db *gorm.DB, image *Image) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Image, error)
	List(ctx context.Context, db *gorm.DB) ([]Image, error)
}

var (
	ErrInvalidURL = errors.New("invalid_image_url")
	ErrInvalidID  = errors.New("invalid_id")
	ErrNotFound   = errors.New("not_found")
)
