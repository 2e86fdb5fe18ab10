package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, service *Service) error
	Update(ctx context.Context, db *gorm.DB, service *Service) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Service, error)
	List(ctx context.Context, db *gorm.DB, filter ListServicesFilter, page pagination.Pagination) ([]*Service, error)
	ReplaceSteps(ctx context.Context, db *gorm.DB, serviceID snowflake.ID, steps []Step) error
}

type ListServicesFilter struct {
	Name string
}
