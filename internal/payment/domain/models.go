// Package domain holds the payment ledger model and the pure rules for
// classifying and advancing an order's payment state.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/money"
)

// Method is the payment instrument used for a record.
type Method string

const (
	MethodUPI          Method = "UPI"
	MethodCash         Method = "Cash"
	MethodBankTransfer Method = "Bank Transfer"
	MethodCreditCard   Method = "Credit Card"
)

// ValidMethod reports whether m is one of the accepted instruments.
func ValidMethod(m Method) bool {
	switch m {
	case MethodUPI, MethodCash, MethodBankTransfer, MethodCreditCard:
		return true
	}
	return false
}

// Status is the three-way payment state of an order.
type Status string

const (
	StatusUnpaid        Status = "unpaid"
	StatusPartiallyPaid Status = "partially-paid"
	StatusPaid          Status = "paid"
)

// ClosingNote is the default note on the record posted by MarkFullyPaid.
const ClosingNote = "Closing payment for remaining balance"

// Record is one payment against an order. Records are immutable once
// created; corrections are new records, never edits.
type Record struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderID   snowflake.ID `gorm:"not null;index" json:"order_id"`
	PaidAt    time.Time    `gorm:"not null" json:"paid_at"`
	Amount    int64        `gorm:"not null" json:"amount"`
	Method    Method       `gorm:"type:text;not null" json:"method"`
	Note      string       `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "payment_records" }

// PaidAmount returns the record amount as money.
func (r Record) PaidAmount() money.Amount { return money.FromPaise(r.Amount) }
