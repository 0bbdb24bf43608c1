package render

import (
	"strings"
	"testing"

	"github.com/craftshop/backoffice/internal/config"
	"github.com/craftshop/backoffice/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() domain.DocumentData {
	profile := config.DefaultCompanyProfile()
	return domain.DocumentData{
		Company: profile,
		Style:   profile.Invoice,

		InvoiceNumber: "INV-20260115-0001",
		OrderNumber:   "ORD-20260115-0001",
		IssueDate:     "15 Jan 2026",

		BillToName:    "Asha Traders",
		BillToAddress: "12 Gandhi Road, Jaipur",

		Lines: []domain.DocumentLine{
			{Name: "Clay Pot", Quantity: 2, GSTRate: 18, UnitPrice: "₹500.00", LineSubtotal: "₹1,000.00", GSTAmount: "₹180.00", LineTotal: "₹1,180.00"},
		},

		Subtotal:      "₹1,000.00",
		GSTTotal:      "₹180.00",
		CGST:          "₹90.00",
		SGST:          "₹90.00",
		Shipping:      "₹100.00",
		Discount:      "₹50.00",
		GrandTotal:    "₹1,230.00",
		HasShipping:   true,
		HasDiscount:   true,
		AmountInWords: "One Thousand Two Hundred and Thirty Rupees Only",
		PaymentStatus: "PAID",
		Paid:          true,
		PaidAmount:    "₹1,230.00",
		Balance:       "₹0.00",
		Watermark:     "PAID",
	}
}

func TestEveryLayoutRendersRequiredBlocks(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	templates := []domain.TemplateID{
		domain.TemplateBasic,
		domain.TemplateTax,
		domain.TemplateDetailed,
		domain.TemplateProfessional,
		domain.TemplateA4Professional,
	}
	data := sampleDocument()

	for _, id := range templates {
		t.Run(string(id), func(t *testing.T) {
			out, err := r.Render(id, data)
			require.NoError(t, err)
			html := string(out)

			assert.Contains(t, html, data.Company.CompanyName)
			assert.Contains(t, html, data.BillToName)
			assert.Contains(t, html, "Clay Pot")
			assert.Contains(t, html, data.GrandTotal)
			assert.Contains(t, html, data.AmountInWords)
			assert.Contains(t, html, data.Company.Bank.IFSC)
			assert.Contains(t, html, `class="watermark"`)
			assert.Contains(t, html, ">PAID<")
		})
	}
}

func TestNoWatermarkWhenUnpaid(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	data := sampleDocument()
	data.Paid = false
	data.Watermark = ""
	data.PaymentStatus = "UNPAID"

	out, err := r.Render(domain.TemplateBasic, data)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="watermark"`)
}

func TestTaxLayoutSplitsGST(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	out, err := r.Render(domain.TemplateTax, sampleDocument())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "CGST")
	assert.Contains(t, html, "SGST")
	assert.Equal(t, 2, strings.Count(html, "₹90.00"))
}

func TestUnsafeStyleValuesAreReplaced(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	data := sampleDocument()
	data.Style.AccentColor = "red; } body { display: none"
	data.Style.FontFamily = "</style><script>"

	out, err := r.Render(domain.TemplateProfessional, data)
	require.NoError(t, err)
	html := string(out)

	assert.NotContains(t, html, "display: none")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "#1a1f36")
	assert.Contains(t, html, "Helvetica")
}

func TestUnknownTemplateRejected(t *testing.T) {
	r, err := NewHTML()
	require.NoError(t, err)

	_, err = r.Render(domain.TemplateID("fancy"), sampleDocument())
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}
