package domain

import (
	"testing"

	"github.com/craftshop/backoffice/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemSummary(t *testing.T) {
	lines, err := ParseItemSummary("Clay Pot (x2), Brass Lamp (x1)")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, SummaryLine{Name: "Clay Pot", Quantity: 2}, lines[0])
	assert.Equal(t, SummaryLine{Name: "Brass Lamp", Quantity: 1}, lines[1])
}

func TestParseItemSummaryWithoutQuantity(t *testing.T) {
	lines, err := ParseItemSummary("Gift Wrap, Jute Bag (x3)")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, int64(3), lines[1].Quantity)
}

func TestParseItemSummaryEmpty(t *testing.T) {
	_, err := ParseItemSummary("   ")
	assert.ErrorIs(t, err, ErrEmptySummary)
}

func TestDistributeTaxableSumsBack(t *testing.T) {
	lines := []SummaryLine{
		{Name: "A", Quantity: 3},
		{Name: "B", Quantity: 2},
		{Name: "C", Quantity: 1},
	}
	taxable := money.FromPaise(100000) // Rs 1000.00

	units := DistributeTaxable(taxable, lines)
	require.Len(t, units, 3)

	var total money.Amount
	for i, u := range units {
		total += money.FromPaise(u.Paise() * lines[i].Quantity)
	}
	// per-unit truncation may shed at most a few paise overall
	assert.LessOrEqual(t, (taxable - total).Paise(), int64(len(lines)))
	assert.GreaterOrEqual(t, (taxable - total).Paise(), int64(0))
}
