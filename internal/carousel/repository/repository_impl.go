package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/internal/carousel/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, image *domain.Image) error {
	return db.WithContext(ctx).Create(image).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, image *domain.Image) error {
	return db.WithContext(ctx).Save(image).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Image{}, "id = ?", id).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Image, error) {
	var image domain.Image
	err := db.WithContext(ctx).First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Image, error) {
	var images []domain.Image
	err := db.WithContext(ctx).
		Order("position asc, created_at asc").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}
