package service

import (
	"testing"
	"time"

	"github.com/craftshop/backoffice/internal/config"
	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() orderdomain.Order {
	return orderdomain.Order{
		Number:       "ORD-20260115-0003",
		CustomerName: "Asha Traders",
		OrderDate:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Items: []orderdomain.Item{
			{Name: "Clay Pot", Quantity: 2, UnitBasePrice: 50000, GSTRate: 18, LineSubtotal: 100000, GSTAmount: 18000, LineTotal: 118000},
			{Name: "Jute Bag", Quantity: 1, UnitBasePrice: 20000, GSTRate: 5, LineSubtotal: 20000, GSTAmount: 1000, LineTotal: 21000},
		},
		Subtotal:      120000,
		GSTTotal:      19000,
		ShippingCost:  10000,
		Discount:      5000,
		GrandTotal:    144000,
		PaidAmount:    144000,
		PaymentStatus: paymentdomain.StatusPaid,
	}
}

func TestBindDocumentFromStructuredItems(t *testing.T) {
	customer := &customerdomain.Customer{
		Name:    "Asha Traders",
		Address: "12 Gandhi Road, Jaipur",
		Phone:   "9876543210",
		GSTIN:   "08AAACA1234A1Z5",
	}

	data := BindDocument(sampleOrder(), customer, config.DefaultCompanyProfile())

	assert.Equal(t, "INV-20260115-0003", data.InvoiceNumber)
	assert.Equal(t, "15 Jan 2026", data.IssueDate)
	assert.Equal(t, "12 Gandhi Road, Jaipur", data.BillToAddress)

	// per-line rates survive, not a flattened default
	require.Len(t, data.Lines, 2)
	assert.Equal(t, float64(18), data.Lines[0].GSTRate)
	assert.Equal(t, float64(5), data.Lines[1].GSTRate)

	assert.Equal(t, "₹1,440.00", data.GrandTotal)
	assert.Equal(t, "₹95.00", data.CGST)
	assert.Equal(t, "₹95.00", data.SGST)
	assert.True(t, data.Paid)
	assert.Equal(t, "PAID", data.Watermark)
	assert.Equal(t, "One Thousand Four Hundred and Forty Rupees Only", data.AmountInWords)
}

func TestBindDocumentSummaryFallback(t *testing.T) {
	order := sampleOrder()
	order.Items = nil
	order.ItemsSummary = "Clay Pot (x2), Jute Bag (x1)"
	order.PaidAmount = 0
	order.PaymentStatus = paymentdomain.StatusUnpaid

	data := BindDocument(order, nil, config.DefaultCompanyProfile())

	require.Len(t, data.Lines, 2)
	assert.Equal(t, "Clay Pot", data.Lines[0].Name)
	assert.Equal(t, int64(2), data.Lines[0].Quantity)
	// fallback has no per-line rates, so the configured default applies
	assert.Equal(t, float64(18), data.Lines[0].GSTRate)
	assert.Equal(t, float64(18), data.Lines[1].GSTRate)

	assert.False(t, data.Paid)
	assert.Empty(t, data.Watermark)
	assert.Equal(t, "Asha Traders", data.BillToName)
}

func TestBindDocumentOddGSTSplit(t *testing.T) {
	order := sampleOrder()
	order.GSTTotal = 19001 // odd paise: SGST takes the extra one

	data := BindDocument(order, nil, config.DefaultCompanyProfile())
	assert.Equal(t, "₹95.00", data.CGST)
	assert.Equal(t, "₹95.01", data.SGST)
}
