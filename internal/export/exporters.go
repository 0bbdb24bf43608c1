package export

import (
	"context"

	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	inventorydomain "github.com/craftshop/backoffice/internal/inventory/domain"
	"github.com/craftshop/backoffice/internal/money"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

// Service produces the downloadable sheets. Exports are full-table
// reporting dumps, so they read the models directly instead of going
// through the paginated repositories.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) *Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("export.service"),
	}
}

var orderColumns = []Column[orderdomain.Order]{
	{Header: "Order No", Value: func(o orderdomain.Order) any { return o.Number }},
	{Header: "Date", Value: func(o orderdomain.Order) any { return o.OrderDate.Format("2006-01-02") }},
	{Header: "Customer", Value: func(o orderdomain.Order) any { return o.CustomerName }},
	{Header: "Items", Value: func(o orderdomain.Order) any { return o.ItemSummary() }},
	{Header: "Subtotal", Value: func(o orderdomain.Order) any { return money.FromPaise(o.Subtotal).Rupees() }},
	{Header: "GST", Value: func(o orderdomain.Order) any { return money.FromPaise(o.GSTTotal).Rupees() }},
	{Header: "Shipping", Value: func(o orderdomain.Order) any { return money.FromPaise(o.ShippingCost).Rupees() }},
	{Header: "Discount", Value: func(o orderdomain.Order) any { return money.FromPaise(o.Discount).Rupees() }},
	{Header: "Grand Total", Value: func(o orderdomain.Order) any { return money.FromPaise(o.GrandTotal).Rupees() }},
	{Header: "Paid", Value: func(o orderdomain.Order) any { return money.FromPaise(o.PaidAmount).Rupees() }},
	{Header: "Balance", Value: func(o orderdomain.Order) any { return o.Balance().Rupees() }},
	{Header: "Status", Value: func(o orderdomain.Order) any { return string(o.PaymentStatus) }},
}

func (s *Service) Orders(ctx context.Context) (Sheet, error) {
	var orders []orderdomain.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return Sheet{}, err
	}
	return BuildSheet("Orders", orders, orderColumns), nil
}

var productColumns = []Column[inventorydomain.Product]{
	{Header: "SKU", Value: func(p inventorydomain.Product) any { return p.SKU }},
	{Header: "Name", Value: func(p inventorydomain.Product) any { return p.Name }},
	{Header: "Category", Value: func(p inventorydomain.Product) any { return p.Category }},
	{Header: "Base Price", Value: func(p inventorydomain.Product) any { return money.FromPaise(p.BasePrice).Rupees() }},
	{Header: "GST %", Value: func(p inventorydomain.Product) any { return p.GSTRate }},
	{Header: "Stock", Value: func(p inventorydomain.Product) any { return p.Stock }},
}

func (s *Service) Products(ctx context.Context) (Sheet, error) {
	var products []inventorydomain.Product
	err := s.db.WithContext(ctx).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return Sheet{}, err
	}
	return BuildSheet("Products", products, productColumns), nil
}

var customerColumns = []Column[customerdomain.Customer]{
	{Header: "Name", Value: func(c customerdomain.Customer) any { return c.Name }},
	{Header: "Email", Value: func(c customerdomain.Customer) any { return c.Email }},
	{Header: "Phone", Value: func(c customerdomain.Customer) any { return c.Phone }},
	{Header: "Address", Value: func(c customerdomain.Customer) any { return c.Address }},
	{Header: "GSTIN", Value: func(c customerdomain.Customer) any { return c.GSTIN }},
}

func (s *Service) Customers(ctx context.Context) (Sheet, error) {
	var customers []customerdomain.Customer
	err := s.db.WithContext(ctx).
		Order("name asc").
		Find(&customers).Error
	if err != nil {
		return Sheet{}, err
	}
	return BuildSheet("Customers", customers, customerColumns), nil
}

// paymentRow joins each record with its order number for readability.
type paymentRow struct {
	paymentdomain.Record
	OrderNumber string
}

var paymentColumns = []Column[paymentRow]{
	{Header: "Order No", Value: func(r paymentRow) any { return r.OrderNumber }},
	{Header: "Paid At", Value: func(r paymentRow) any { return r.PaidAt.Format("2006-01-02") }},
	{Header: "Amount", Value: func(r paymentRow) any { return money.FromPaise(r.Amount).Rupees() }},
	{Header: "Method", Value: func(r paymentRow) any { return string(r.Method) }},
	{Header: "Note", Value: func(r paymentRow) any { return r.Note }},
}

func (s *Service) Payments(ctx context.Context) (Sheet, error) {
	var rows []paymentRow
	err := s.db.WithContext(ctx).
		Model(&paymentdomain.Record{}).
		Select("payment_records.*, orders.number AS order_number").
		Joins("LEFT JOIN orders ON orders.id = payment_records.order_id").
		Order("payment_records.paid_at desc").
		Scan(&rows).Error
	if err != nil {
		return Sheet{}, err
	}
	return BuildSheet("Payments", rows, paymentColumns), nil
}
