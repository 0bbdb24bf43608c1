package domain

import (
	"context"
	"errors"

	"github.com/craftshop/backoffice/pkg/db/pagination"
)

type CreateProductRequest struct {
	SKU       string
	Name      string
	Category  string
	BasePrice int64
	GSTRate   float64
	Stock     int64
}

type UpdateProductRequest struct {
	ID        string
	Name      *string
	Category  *string
	BasePrice *int64
	GSTRate   *float64
	Stock     *int64
}

type ListProductRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Category  string
}

type ListProductFilter struct {
	Name     string
	Category string
}

type ListProductResponse struct {
	pagination.PageInfo
	Products []Product `json:"products"`
}

type GetProductRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
	List(context.Context, ListProductRequest) (ListProductResponse, error)
	GetByID(context.Context, GetProductRequest) (Product, error)
}

var (
	ErrInvalidSKU        = errors.New("invalid_sku")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidPrice      = errors.New("invalid_price")
	ErrInvalidStock      = errors.New("invalid_stock")
	ErrInvalidID         = errors.New("invalid_id")
	ErrDuplicateSKU      = errors.New("duplicate_sku")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrNotFound          = errors.New("not_found")
)
