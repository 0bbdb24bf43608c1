// Package migration creates the schema on startup so the service is
// usable out of the box for local and self-hosted installs. AutoMigrate
// keeps the three supported dialects (sqlite, postgres, mysql) in sync
// from one model set.
package migration

import (
	"errors"

	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	inventorydomain "github.com/craftshop/backoffice/internal/inventory/domain"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&customerdomain.Customer{},
		&inventorydomain.Product{},
		&orderdomain.Order{},
		&orderdomain.Item{},
		&paymentdomain.Record{},
	)
}
