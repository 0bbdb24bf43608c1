// Package domain contains persistence models for customer orders.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/money"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
)

// Order is a priced, persisted customer order. Pricing columns are a
// snapshot taken at creation time; payment columns are maintained by the
// payment service as records are appended.
type Order struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Number       string       `gorm:"type:text;not null;uniqueIndex" json:"number"`
	CustomerID   snowflake.ID `gorm:"not null;index" json:"customer_id"`
	CustomerName string       `gorm:"type:text;not null" json:"customer_name"`
	OrderDate    time.Time    `gorm:"not null" json:"order_date"`

	Items []Item `gorm:"foreignKey:OrderID" json:"items"`

	// ItemsSummary is the "Name (x2), Other (x1)" snapshot taken at
	// creation, kept so documents can still be produced if the item rows
	// are ever detached from the order.
	ItemsSummary string `gorm:"type:text" json:"items_summary,omitempty"`

	Subtotal     int64 `gorm:"not null;default:0" json:"subtotal"`
	GSTTotal     int64 `gorm:"not null;default:0" json:"gst_total"`
	ShippingCost int64 `gorm:"not null;default:0" json:"shipping_cost"`
	Discount     int64 `gorm:"not null;default:0" json:"discount"`
	GrandTotal   int64 `gorm:"not null;default:0" json:"grand_total"`

	PaidAmount    int64                `gorm:"not null;default:0" json:"paid_amount"`
	PaymentStatus paymentdomain.Status `gorm:"type:text;not null;default:'unpaid'" json:"payment_status"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Order) TableName() string { return "orders" }

// Item is one line on an order, with its tax computed at the product's
// own rate.
type Item struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderID       snowflake.ID `gorm:"not null;index" json:"order_id"`
	ProductID     snowflake.ID `gorm:"not null;index" json:"product_id"`
	Name          string       `gorm:"type:text;not null" json:"name"`
	Quantity      int64        `gorm:"not null" json:"quantity"`
	UnitBasePrice int64        `gorm:"not null" json:"unit_base_price"`
	GSTRate       float64      `gorm:"not null" json:"gst_rate"`
	LineSubtotal  int64        `gorm:"not null" json:"line_subtotal"`
	GSTAmount     int64        `gorm:"not null" json:"gst_amount"`
	LineTotal     int64        `gorm:"not null" json:"line_total"`
	CreatedAt     time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Item) TableName() string { return "order_items" }

// Balance is the amount still owed on the order.
func (o Order) Balance() money.Amount {
	return money.FromPaise(o.GrandTotal - o.PaidAmount)
}

// ItemSummary renders the human-readable line summary used on order
// listings and exports, e.g. "Clay Pot (x2), Brass Lamp (x1)".
func (o Order) ItemSummary() string {
	if len(o.Items) == 0 {
		return o.ItemsSummary
	}
	parts := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
