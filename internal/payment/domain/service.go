package domain

import (
	"context"
	"time"
)

type RecordPaymentRequest struct {
	OrderID string
	Amount  int64
	Method  Method
	Note    string
	PaidAt  *time.Time
}

type MarkFullyPaidRequest struct {
	OrderID string
	Method  Method
}

// LedgerView is the derived payment state returned to callers after any
// ledger operation.
type LedgerView struct {
	OrderID        string   `json:"order_id"`
	TotalAmount    int64    `json:"total_amount"`
	PaidAmount     int64    `json:"paid_amount"`
	Balance        int64    `json:"balance"`
	Status         Status   `json:"status"`
	Records        []Record `json:"records"`
	InitialPayment *Record  `json:"initial_payment,omitempty"`
	FinalPayment   *Record  `json:"final_payment,omitempty"`
}

type Service interface {
	Record(context.Context, RecordPaymentRequest) (LedgerView, error)
	MarkFullyPaid(context.Context, MarkFullyPaidRequest) (LedgerView, error)
	LedgerForOrder(ctx context.Context, orderID string) (LedgerView, error)
}
