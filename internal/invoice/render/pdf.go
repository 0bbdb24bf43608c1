package render

import (
	"fmt"

	"github.com/craftshop/backoffice/internal/invoice/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFRenderer produces the A4 rendition of an invoice document. The
// layout selection applies to HTML only; the PDF has a single fixed
// layout close to the tax template.
type PDFRenderer struct{}

func NewPDF() *PDFRenderer {
	return &PDFRenderer{}
}

func (p *PDFRenderer) Render(data domain.DocumentData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, data.Company.CompanyName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(14,
		col.New(12).Add(
			text.New(data.Company.Address, props.Text{Size: 9}),
			text.New("GSTIN: "+data.Company.GSTIN, props.Text{Size: 9, Top: 4}),
		),
	)

	m.AddRow(10,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  13,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Bill To", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.New(data.BillToName, props.Text{Size: 9, Top: 4}),
			text.New(data.BillToAddress, props.Text{Size: 9, Top: 8}),
		),
		col.New(6).Add(
			text.New("Invoice No: "+data.InvoiceNumber, props.Text{Size: 9, Align: align.Right}),
			text.New("Date: "+data.IssueDate, props.Text{Size: 9, Top: 4, Align: align.Right}),
			text.New("Order: "+data.OrderNumber, props.Text{Size: 9, Top: 8, Align: align.Right}),
		),
	)

	m.AddRow(8,
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "GST", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range data.Lines {
		m.AddRow(8,
			text.NewCol(5, item.Name, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitPrice, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.GSTAmount, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.LineTotal, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(2, line.NewCol(12))

	addTotal := func(label, value string, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(7),
			text.NewCol(3, label, props.Text{Size: 9, Style: style}),
			text.NewCol(2, value, props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	addTotal("Taxable Value", data.Subtotal, false)
	addTotal("CGST", data.CGST, false)
	addTotal("SGST", data.SGST, false)
	if data.HasShipping {
		addTotal("Shipping", data.Shipping, false)
	}
	if data.HasDiscount {
		addTotal("Discount", "-"+data.Discount, false)
	}
	addTotal("Grand Total", data.GrandTotal, true)

	m.AddRow(12,
		text.NewCol(12, "In Words: "+data.AmountInWords, props.Text{Size: 9, Top: 4}),
	)

	bank := data.Company.Bank
	m.AddRow(16,
		col.New(12).Add(
			text.New("Bank: "+bank.BankName+" | A/C: "+bank.AccountNumber+" | IFSC: "+bank.IFSC, props.Text{Size: 8}),
			text.New("Account Name: "+bank.AccountName, props.Text{Size: 8, Top: 4}),
		),
	)

	if data.Paid {
		m.AddRow(10,
			text.NewCol(12, data.Watermark, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
