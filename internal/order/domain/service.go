package domain

import (
	"context"
	"errors"
	"time"

	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/craftshop/backoffice/pkg/db/pagination"
)

type OrderLineInput struct {
	ProductID string
	Quantity  int64
}

type InitialPaymentInput struct {
	Amount int64
	Method paymentdomain.Method
	Note   string
}

type CreateOrderRequest struct {
	CustomerID     string
	OrderDate      *time.Time
	Lines          []OrderLineInput
	ShippingCost   int64
	Discount       int64
	Notes          string
	InitialPayment *InitialPaymentInput
}

type ListOrderRequest struct {
	PageToken     string
	PageSize      int32
	CustomerID    string
	PaymentStatus string
	DateFrom      *time.Time
	DateTo        *time.Time
}

type ListOrderFilter struct {
	CustomerID    string
	PaymentStatus string
	DateFrom      *time.Time
	DateTo        *time.Time
}

type ListOrderResponse struct {
	pagination.PageInfo
	Orders []Order `json:"orders"`
}

type GetOrderRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateOrderRequest) (Order, error)
	List(context.Context, ListOrderRequest) (ListOrderResponse, error)
	GetByID(context.Context, GetOrderRequest) (Order, error)
}

var (
	ErrInvalidCustomer = errors.New("invalid_customer")
	ErrInvalidID       = errors.New("invalid_id")
	ErrEmptyOrder      = errors.New("empty_order")
	ErrUnknownProduct  = errors.New("unknown_product")
	ErrNotFound        = errors.New("not_found")
)
