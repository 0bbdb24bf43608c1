package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/money"
)

// Product is a sellable inventory item. BasePrice is the GST-exclusive
// unit price in paise; the GST rate travels with the product so order
// lines can be taxed per item.
type Product struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	SKU       string       `gorm:"type:text;not null;uniqueIndex" json:"sku"`
	Name      string       `gorm:"not null" json:"name"`
	Category  string       `gorm:"type:text" json:"category,omitempty"`
	BasePrice int64        `gorm:"not null" json:"base_price"`
	GSTRate   float64      `gorm:"not null;default:18" json:"gst_rate"`
	Stock     int64        `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// UnitBasePrice returns the unit price as money.
func (p Product) UnitBasePrice() money.Amount { return money.FromPaise(p.BasePrice) }
