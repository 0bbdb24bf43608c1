package domain

import "errors"

var (
	ErrInvalidAmount  = errors.New("invalid_amount")
	ErrInvalidMethod  = errors.New("invalid_method")
	ErrInvalidOrderID = errors.New("invalid_order_id")
	ErrOverpayment    = errors.New("overpayment")
	ErrAlreadyPaid    = errors.New("already_paid")
	ErrNotFound       = errors.New("not_found")
)
