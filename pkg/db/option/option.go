package option

import (
	"github.com/uniguide/uniguide/pkg/db/pagination"
	"gorm.io/gorm"
)

type Option interface {
	Apply(*gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	size := o.page.PageSize
	if size <= 0 {
		size = 10
	}
	// Fetch one extra row so callers can detect another page.
	stmt = stmt.Limit(size + 1)

	if o.page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(o.page.PageToken)
		if err == nil && cursor != nil && cursor.CreatedAt != "" {
			stmt = stmt.Where("created_at < ?", cursor.CreatedAt)
		}
	}

	return stmt
}
