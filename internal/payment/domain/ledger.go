package domain

import (
	"time"

	"github.com/craftshop/backoffice/internal/money"
)

// Ledger is the append-only view of payments against an order total. It is
// a value: operations return a new Ledger plus the record to persist, so
// callers decide when anything is written.
type Ledger struct {
	TotalAmount money.Amount
	Records     []Record
}

// PaidAmount is the sum of all recorded payments.
func (l Ledger) PaidAmount() money.Amount {
	var sum money.Amount
	for _, r := range l.Records {
		sum += r.PaidAmount()
	}
	return sum
}

// Balance is the amount still owed. Never negative given the overpayment
// guard in Record.
func (l Ledger) Balance() money.Amount {
	return l.TotalAmount - l.PaidAmount()
}

// Status classifies the ledger's current payment state.
func (l Ledger) Status() Status {
	return ClassifyStatus(l.TotalAmount, l.PaidAmount())
}

// ClassifyStatus implements the three-way rule. paid == total counts as
// fully paid.
func ClassifyStatus(total, paid money.Amount) Status {
	switch {
	case paid <= 0:
		return StatusUnpaid
	case paid >= total:
		return StatusPaid
	default:
		return StatusPartiallyPaid
	}
}

// Append validates and appends a payment, returning the updated ledger and
// the new record. Amounts must be positive and must not push the paid sum
// past the order total.
func (l Ledger) Append(amount money.Amount, method Method, note string, at time.Time) (Ledger, Record, error) {
	if amount <= 0 {
		return l, Record{}, ErrInvalidAmount
	}
	if !ValidMethod(method) {
		return l, Record{}, ErrInvalidMethod
	}
	if l.PaidAmount()+amount > l.TotalAmount {
		return l, Record{}, ErrOverpayment
	}

	rec := Record{
		PaidAt: at,
		Amount: amount.Paise(),
		Method: method,
		Note:   note,
	}
	updated := Ledger{
		TotalAmount: l.TotalAmount,
		Records:     append(append([]Record(nil), l.Records...), rec),
	}
	return updated, rec, nil
}

// MarkFullyPaid posts a single record covering the remaining balance. A
// ledger that is already settled fails with ErrAlreadyPaid and is not
// touched.
func (l Ledger) MarkFullyPaid(method Method, at time.Time) (Ledger, Record, error) {
	if l.Balance() <= 0 {
		return l, Record{}, ErrAlreadyPaid
	}
	return l.Append(l.Balance(), method, ClosingNote, at)
}

// InitialPayment returns the record captured at order creation, if any.
func (l Ledger) InitialPayment() *Record {
	if len(l.Records) == 0 {
		return nil
	}
	return &l.Records[0]
}

// FinalPayment returns the record that settled the ledger: the last one,
// and only once the ledger is fully paid. The two-slot initial/final view
// is a display convenience; the ledger itself holds any number of records.
func (l Ledger) FinalPayment() *Record {
	if len(l.Records) == 0 || l.Status() != StatusPaid {
		return nil
	}
	return &l.Records[len(l.Records)-1]
}
