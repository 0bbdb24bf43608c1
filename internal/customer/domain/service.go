package domain

import (
	"context"
	"errors"

	"github.com/craftshop/backoffice/pkg/db/pagination"
)

type CreateCustomerRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
	GSTIN   string
}

type UpdateCustomerRequest struct {
	ID      string
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	GSTIN   *string
}

type ListCustomerRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Phone     string
}

type ListCustomerFilter struct {
	Name  string
	Phone string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type GetCustomerRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidEmail = errors.New("invalid_email")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
