// Package seed fills an empty development database with a small sample
// catalog so the API is explorable immediately after first boot. It
// never touches a database that already has products.
package seed

import (
	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	inventorydomain "github.com/craftshop/backoffice/internal/inventory/domain"
	"gorm.io/gorm"
)

func EnsureSampleCatalog(db *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := db.Model(&inventorydomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []inventorydomain.Product{
		{ID: node.Generate(), SKU: "POT-CLAY-01", Name: "Clay Pot", Category: "Pottery", BasePrice: 50000, GSTRate: 18, Stock: 40},
		{ID: node.Generate(), SKU: "LAMP-BRASS-01", Name: "Brass Lamp", Category: "Decor", BasePrice: 120000, GSTRate: 18, Stock: 15},
		{ID: node.Generate(), SKU: "BAG-JUTE-01", Name: "Jute Bag", Category: "Accessories", BasePrice: 20000, GSTRate: 5, Stock: 100},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customer := customerdomain.Customer{
		ID:      node.Generate(),
		Name:    "Walk-in Customer",
		Address: "Counter sale",
	}
	return db.Create(&customer).Error
}
