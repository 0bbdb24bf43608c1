package pricing

import (
	"testing"

	"github.com/craftshop/backoffice/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclusivePrice(t *testing.T) {
	// 500.00 at 18% -> 590.00
	assert.Equal(t, money.FromPaise(59000), InclusivePrice(money.FromPaise(50000), 18))
	// zero rate is identity
	assert.Equal(t, money.FromPaise(50000), InclusivePrice(money.FromPaise(50000), 0))
	// 99.99 at 5% -> 104.99 (104.9895 rounds down)
	assert.Equal(t, money.FromPaise(10499), InclusivePrice(money.FromPaise(9999), 5))
}

func TestBaseFromInclusive(t *testing.T) {
	// 590.00 at 18% -> 500.00
	assert.Equal(t, money.FromPaise(50000), BaseFromInclusive(money.FromPaise(59000), 18))
	assert.Equal(t, money.FromPaise(59000), BaseFromInclusive(money.FromPaise(59000), 0))
}

func TestGSTRoundTrip(t *testing.T) {
	rates := []float64{0, 0.25, 3, 5, 9, 12, 18, 28}
	bases := []int64{0, 1, 99, 100, 9999, 50000, 123456, 99999999}
	for _, rate := range rates {
		for _, base := range bases {
			in := money.FromPaise(base)
			out := BaseFromInclusive(InclusivePrice(in, rate), rate)
			diff := out.Paise() - in.Paise()
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, int64(1),
				"round trip of %d paise at %.2f%%", base, rate)
		}
	}
}

func TestValidateRate(t *testing.T) {
	for _, rate := range PresetRates {
		assert.NoError(t, ValidateRate(rate))
	}
	assert.NoError(t, ValidateRate(12.5))
	assert.NoError(t, ValidateRate(28))
	assert.ErrorIs(t, ValidateRate(-1), ErrInvalidRate)
	assert.ErrorIs(t, ValidateRate(28.01), ErrInvalidRate)
}

func TestComputeLineItem(t *testing.T) {
	item, err := ComputeLineItem("SKU-1", "Clay Pot", money.FromPaise(50000), 2, 18)
	require.NoError(t, err)
	assert.Equal(t, money.FromPaise(100000), item.LineSubtotal)
	assert.Equal(t, money.FromPaise(18000), item.GSTAmount)
	assert.Equal(t, money.FromPaise(118000), item.LineTotal)
	assert.Equal(t, item.LineSubtotal+item.GSTAmount, item.LineTotal)
}

func TestComputeLineItemRejectsBadInput(t *testing.T) {
	_, err := ComputeLineItem("SKU-1", "Clay Pot", money.FromPaise(100), 0, 18)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ComputeLineItem("SKU-1", "Clay Pot", money.FromPaise(100), -3, 18)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ComputeLineItem("SKU-1", "Clay Pot", money.FromPaise(100), 1, 40)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ComputeLineItem("SKU-1", "Clay Pot", money.FromPaise(-100), 1, 18)
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestComputeOrderTotals(t *testing.T) {
	// 2 x 500 @ 18%, shipping 100, discount 50 => 1230
	item, err := ComputeLineItem("SKU-1", "Clay Pot", money.FromRupees(500), 2, 18)
	require.NoError(t, err)

	totals, err := ComputeOrderTotals([]LineItem{item}, money.FromRupees(100), money.FromRupees(50))
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(1000), totals.Subtotal)
	assert.Equal(t, money.FromRupees(180), totals.GSTTotal)
	assert.Equal(t, money.FromRupees(1230), totals.GrandTotal)
}

func TestComputeOrderTotalsMultiRate(t *testing.T) {
	a, err := ComputeLineItem("A", "Brass Lamp", money.FromRupees(200), 1, 5)
	require.NoError(t, err)
	b, err := ComputeLineItem("B", "Silk Scarf", money.FromRupees(300), 2, 18)
	require.NoError(t, err)

	totals, err := ComputeOrderTotals([]LineItem{a, b}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(800), totals.Subtotal)
	assert.Equal(t, money.FromRupees(118), totals.GSTTotal) // 10 + 108
	assert.Equal(t, money.FromRupees(918), totals.GrandTotal)
}

func TestComputeOrderTotalsDiscountTooLarge(t *testing.T) {
	item, err := ComputeLineItem("SKU-1", "Clay Pot", money.FromRupees(100), 1, 0)
	require.NoError(t, err)

	_, err = ComputeOrderTotals([]LineItem{item}, 0, money.FromRupees(101))
	assert.ErrorIs(t, err, ErrDiscountExceedsTotal)
}

func TestComputeOrderTotalsEmptyOrder(t *testing.T) {
	totals, err := ComputeOrderTotals(nil, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, money.Amount(0), totals.GrandTotal)
}
