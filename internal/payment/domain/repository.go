package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertRecord(ctx context.Context, db *gorm.DB, record *Record) error
	ListByOrder(ctx context.Context, db *gorm.DB, orderID snowflake.ID) ([]Record, error)
}
