package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/internal/guide/domain"
	"github.com/uniguide/uniguide/pkg/db/option"
	"github.com/uniguide/uniguide/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, service *domain.Service) error {
	return db.WithContext(ctx).Create(service).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, service *domain.Service) error {
	return db.WithContext(ctx).Omit("Steps").Save(service).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Step{}, "service_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Service{}, "id = ?", id).Error
	})
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Service, error) {
	var service domain.Service
	err := db.WithContext(ctx).
		Preload("Steps", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc")
		}).
		First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListServicesFilter, page pagination.Pagination) ([]*domain.Service, error) {
	var services []*domain.Service
	stmt := db.WithContext(ctx).Model(&domain.Service{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *repo) ReplaceSteps(ctx context.Context, db *gorm.DB, serviceID snowflake.ID, steps []domain.Step) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Step{}, "service_id = ?", serviceID).Error; err != nil {
			return err
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.Create(&steps).Error
	})
}
