// Package pricing computes GST-inclusive prices, per-line tax amounts and
// order totals. All amounts are paise; rate derivation goes through
// shopspring/decimal so that divide-then-round stays exact.
package pricing

import (
	"errors"

	"github.com/craftshop/backoffice/internal/money"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity      = errors.New("invalid_quantity")
	ErrInvalidRate          = errors.New("invalid_rate")
	ErrNegativeAmount       = errors.New("negative_amount")
	ErrDiscountExceedsTotal = errors.New("discount_exceeds_total")
)

// MaxRate is the upper bound for GST percentages.
const MaxRate = 28

// PresetRates are the GST slabs offered in the order form. Custom rates in
// [0, MaxRate] are also accepted.
var PresetRates = []float64{0, 3, 5, 9, 18}

// LineItem is one priced product entry within an order.
type LineItem struct {
	ProductRef    string       `json:"product_ref"`
	Name          string       `json:"name"`
	Quantity      int64        `json:"quantity"`
	UnitBasePrice money.Amount `json:"unit_base_price"`
	GSTRate       float64      `json:"gst_rate"`
	LineSubtotal  money.Amount `json:"line_subtotal"`
	GSTAmount     money.Amount `json:"gst_amount"`
	LineTotal     money.Amount `json:"line_total"`
}

// OrderTotals aggregates an order's pricing.
type OrderTotals struct {
	Subtotal     money.Amount `json:"subtotal"`
	GSTTotal     money.Amount `json:"gst_total"`
	ShippingCost money.Amount `json:"shipping_cost"`
	Discount     money.Amount `json:"discount"`
	GrandTotal   money.Amount `json:"grand_total"`
}

// ValidateRate checks a GST percentage against the allowed range.
func ValidateRate(rate float64) error {
	if rate < 0 || rate > MaxRate {
		return ErrInvalidRate
	}
	return nil
}

func gstFactor(rate float64) decimal.Decimal {
	return decimal.NewFromInt(1).Add(
		decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100)))
}

// InclusivePrice returns base grossed up by the GST rate, rounded to the
// nearest paisa.
func InclusivePrice(base money.Amount, rate float64) money.Amount {
	p := decimal.NewFromInt(base.Paise()).Mul(gstFactor(rate)).Round(0)
	return money.FromPaise(p.IntPart())
}

// BaseFromInclusive derives the pre-tax base from a GST-inclusive price.
// Inverse of InclusivePrice within one paisa for any rate in [0, MaxRate].
func BaseFromInclusive(inclusive money.Amount, rate float64) money.Amount {
	p := decimal.NewFromInt(inclusive.Paise()).DivRound(gstFactor(rate), 0)
	return money.FromPaise(p.IntPart())
}

// ComputeLineItem derives the subtotal, GST amount and total for one line.
// Quantity must be a positive integer and the rate within [0, MaxRate].
func ComputeLineItem(productRef, name string, unitBase money.Amount, quantity int64, rate float64) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if err := ValidateRate(rate); err != nil {
		return LineItem{}, err
	}
	if unitBase < 0 {
		return LineItem{}, ErrNegativeAmount
	}

	subtotal := money.FromPaise(unitBase.Paise() * quantity)
	gst := decimal.NewFromInt(subtotal.Paise()).
		Mul(decimal.NewFromFloat(rate)).
		DivRound(decimal.NewFromInt(100), 0)
	gstAmount := money.FromPaise(gst.IntPart())

	return LineItem{
		ProductRef:    productRef,
		Name:          name,
		Quantity:      quantity,
		UnitBasePrice: unitBase,
		GSTRate:       rate,
		LineSubtotal:  subtotal,
		GSTAmount:     gstAmount,
		LineTotal:     subtotal + gstAmount,
	}, nil
}

// ComputeOrderTotals sums line items and applies shipping and a single
// order-level discount after tax. A discount larger than the pre-discount
// total is a caller error; the grand total is never negative.
func ComputeOrderTotals(items []LineItem, shipping, discount money.Amount) (OrderTotals, error) {
	if shipping < 0 || discount < 0 {
		return OrderTotals{}, ErrNegativeAmount
	}

	var subtotal, gstTotal money.Amount
	for _, item := range items {
		subtotal += item.LineSubtotal
		gstTotal += item.GSTAmount
	}

	preDiscount := subtotal + gstTotal + shipping
	if discount > preDiscount {
		return OrderTotals{}, ErrDiscountExceedsTotal
	}

	return OrderTotals{
		Subtotal:     subtotal,
		GSTTotal:     gstTotal,
		ShippingCost: shipping,
		Discount:     discount,
		GrandTotal:   preDiscount - discount,
	}, nil
}
