package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListProductFilter, page pagination.Pagination) ([]*Product, error)
	// DecrementStock atomically reduces stock by qty; returns
	// ErrInsufficientStock when fewer than qty units remain.
	DecrementStock(ctx context.Context, db *gorm.DB, id snowflake.ID, qty int64) error
}
