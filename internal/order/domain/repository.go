package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/craftshop/backoffice/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Order, error)
	List(ctx context.Context, db *gorm.DB, filter ListOrderFilter, page pagination.Pagination) ([]*Order, error)
	// CountByDay returns how many orders were placed on the given day,
	// used to derive the next order-number sequence.
	CountByDay(ctx context.Context, db *gorm.DB, day time.Time) (int64, error)
	// UpdatePaymentState persists the derived paid amount and status.
	UpdatePaymentState(ctx context.Context, db *gorm.DB, id snowflake.ID, paid int64, status paymentdomain.Status) error
}
