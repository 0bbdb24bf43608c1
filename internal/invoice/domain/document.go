// Package domain defines the invoice document model. Documents are not
// persisted: they are bound from an order snapshot on demand, rendered,
// and discarded.
package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/craftshop/backoffice/internal/config"
)

// TemplateID selects one of the built-in invoice layouts.
type TemplateID string

const (
	TemplateBasic          TemplateID = "basic"
	TemplateTax            TemplateID = "tax"
	TemplateDetailed       TemplateID = "detailed"
	TemplateProfessional   TemplateID = "professional"
	TemplateA4Professional TemplateID = "a4professional"
)

// DefaultTemplate is used when the caller does not pick one.
const DefaultTemplate = TemplateBasic

var templateIDs = map[TemplateID]struct{}{
	TemplateBasic:          {},
	TemplateTax:            {},
	TemplateDetailed:       {},
	TemplateProfessional:   {},
	TemplateA4Professional: {},
}

var (
	ErrUnknownTemplate = errors.New("unknown_template")
	ErrOrderNotFound   = errors.New("order_not_found")
	ErrInvalidOrderID  = errors.New("invalid_order_id")
)

// ParseTemplateID normalizes and validates a template identifier. Empty
// input falls back to the default layout.
func ParseTemplateID(s string) (TemplateID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTemplate, nil
	}
	id := TemplateID(s)
	if _, ok := templateIDs[id]; !ok {
		return "", ErrUnknownTemplate
	}
	return id, nil
}

// DocumentLine is one row of the itemized table, fully formatted.
type DocumentLine struct {
	Name         string
	Quantity     int64
	GSTRate      float64
	UnitPrice    string
	LineSubtotal string
	GSTAmount    string
	LineTotal    string
}

// DocumentData is the single view model every layout renders from. All
// money fields are pre-formatted display strings so templates carry no
// arithmetic.
type DocumentData struct {
	Company config.CompanyProfile
	Style   config.InvoiceStyle

	InvoiceNumber string
	OrderNumber   string
	IssueDate     string

	BillToName    string
	BillToAddress string
	BillToPhone   string
	BillToGSTIN   string

	Lines []DocumentLine

	Subtotal    string
	GSTTotal    string
	CGST        string
	SGST        string
	Shipping    string
	Discount    string
	GrandTotal  string
	HasShipping bool
	HasDiscount bool

	AmountInWords string

	PaymentStatus string
	Paid          bool
	PaidAmount    string
	Balance       string

	// Watermark is non-empty only for settled orders.
	Watermark string
}

// RenderRequest selects the order and layout to render.
type RenderRequest struct {
	OrderID  string
	Template TemplateID
}

type Service interface {
	// BuildDocument binds an order snapshot into the render view model.
	BuildDocument(ctx context.Context, orderID string) (DocumentData, error)
	// RenderHTML produces a complete printable HTML document.
	RenderHTML(ctx context.Context, req RenderRequest) ([]byte, error)
	// RenderPDF produces an A4 PDF rendition of the same document.
	RenderPDF(ctx context.Context, req RenderRequest) ([]byte, error)
}
