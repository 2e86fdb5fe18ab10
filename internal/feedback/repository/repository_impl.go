package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/uniguide/uniguide/internal/feedback/domain"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, feedback *domain.Feedback) error {
	return db.WithContext(ctx).Create(feedback).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Feedback{}).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Feedback, error) {
	var row domain.Feedback
	if err := db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *repository) ListByService(ctx context.Context, db *gorm.DB, serviceID snowflake.ID, stepNumber *int) ([]domain.Feedback, error) {
	var rows []domain.Feedback
	query := db.WithContext(ctx).Where("service_id = ?", serviceID)
	if stepNumber != nil {
		query = query.Where("step_number = ?", *stepNumber)
	}
	if err := query.Order("id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListAll(ctx context.Context, db *gorm.DB, serviceID *snowflake.ID) ([]domain.Feedback, error) {
	var rows []domain.Feedback
	query := db.WithContext(ctx)
	if serviceID != nil {
		query = query.Where("service_id = ?", *serviceID)
	}
	// As-fetched order: created_at is a raw string and does not sort
	// chronologically across formats, so ordering is left to callers.
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
