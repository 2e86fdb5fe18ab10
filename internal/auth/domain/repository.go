package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/uniguide/uniguide/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, user *User) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	Update(ctx context.Context, db *gorm.DB, user *User) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	List(ctx context.Context, db *gorm.DB, filter ListUsersFilter, page pagination.Pagination) ([]*User, error)
}

type ListUsersFilter struct {
	Email string
	Role  string
}
