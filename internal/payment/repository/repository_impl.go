package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/payment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertRecord(ctx context.Context, db *gorm.DB, record *domain.Record) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) ListByOrder(ctx context.Context, db *gorm.DB, orderID snowflake.ID) ([]domain.Record, error) {
	var records []domain.Record
	err := db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("paid_at asc, id asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
