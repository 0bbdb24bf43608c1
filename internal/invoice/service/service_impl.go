package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/config"
	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	"github.com/craftshop/backoffice/internal/invoice/domain"
	"github.com/craftshop/backoffice/internal/invoice/render"
	"github.com/craftshop/backoffice/internal/money"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Profile      *config.ProfileHolder
	OrderRepo    orderdomain.Repository
	CustomerRepo customerdomain.Repository
	HTML         *render.HTMLRenderer
	PDF          *render.PDFRenderer
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	profile      *config.ProfileHolder
	orderRepo    orderdomain.Repository
	customerRepo customerdomain.Repository
	html         *render.HTMLRenderer
	pdf          *render.PDFRenderer
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("invoice.service"),
		profile:      p.Profile,
		orderRepo:    p.OrderRepo,
		customerRepo: p.CustomerRepo,
		html:         p.HTML,
		pdf:          p.PDF,
	}
}

// BuildDocument binds the order snapshot, customer record and current
// company profile into the render view model. This is the single data
// binding step every layout shares.
func (s *Service) BuildDocument(ctx context.Context, orderID string) (domain.DocumentData, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(orderID))
	if err != nil {
		return domain.DocumentData{}, domain.ErrInvalidOrderID
	}

	order, err := s.orderRepo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.DocumentData{}, err
	}
	if order == nil {
		return domain.DocumentData{}, domain.ErrOrderNotFound
	}

	customer, err := s.customerRepo.FindByID(ctx, s.db, order.CustomerID)
	if err != nil {
		return domain.DocumentData{}, err
	}

	profile := s.profile.Get()
	return BindDocument(*order, customer, profile), nil
}

func (s *Service) RenderHTML(ctx context.Context, req domain.RenderRequest) ([]byte, error) {
	data, err := s.BuildDocument(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	tpl := req.Template
	if tpl == "" {
		tpl = domain.DefaultTemplate
	}
	out, err := s.html.Render(tpl, data)
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice rendered",
		zap.String("order_id", req.OrderID),
		zap.String("template", string(tpl)),
	)
	return out, nil
}

func (s *Service) RenderPDF(ctx context.Context, req domain.RenderRequest) ([]byte, error) {
	data, err := s.BuildDocument(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(data)
}

// BindDocument maps an order snapshot to the view model. Structured line
// items carry their true per-line GST rates; the flattened default rate
// only applies through the summary-string fallback below.
func BindDocument(order orderdomain.Order, customer *customerdomain.Customer, profile config.CompanyProfile) domain.DocumentData {
	data := domain.DocumentData{
		Company: profile,
		Style:   profile.Invoice,

		InvoiceNumber: invoiceNumberFor(order.Number),
		OrderNumber:   order.Number,
		IssueDate:     order.OrderDate.Format("02 Jan 2006"),

		BillToName: order.CustomerName,

		Subtotal:    money.Format(money.FromPaise(order.Subtotal)),
		GSTTotal:    money.Format(money.FromPaise(order.GSTTotal)),
		CGST:        money.Format(money.FromPaise(order.GSTTotal / 2)),
		SGST:        money.Format(money.FromPaise(order.GSTTotal - order.GSTTotal/2)),
		Shipping:    money.Format(money.FromPaise(order.ShippingCost)),
		Discount:    money.Format(money.FromPaise(order.Discount)),
		GrandTotal:  money.Format(money.FromPaise(order.GrandTotal)),
		HasShipping: order.ShippingCost > 0,
		HasDiscount: order.Discount > 0,

		PaymentStatus: strings.ToUpper(string(order.PaymentStatus)),
		Paid:          order.PaymentStatus == paymentdomain.StatusPaid,
		PaidAmount:    money.Format(money.FromPaise(order.PaidAmount)),
		Balance:       money.Format(order.Balance()),
	}

	if customer != nil {
		data.BillToName = customer.Name
		data.BillToAddress = customer.Address
		data.BillToPhone = customer.Phone
		data.BillToGSTIN = customer.GSTIN
	}

	if data.Paid {
		data.Watermark = profile.Invoice.WatermarkText
	}

	if words, err := money.InWords(money.FromPaise(order.GrandTotal).WholeRupees()); err == nil {
		data.AmountInWords = words + " Rupees Only"
	}

	if len(order.Items) > 0 {
		data.Lines = linesFromItems(order.Items)
	} else {
		data.Lines = linesFromSummary(order, profile.Invoice.DefaultGSTRate)
	}
	return data
}

func linesFromItems(items []orderdomain.Item) []domain.DocumentLine {
	lines := make([]domain.DocumentLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.DocumentLine{
			Name:         it.Name,
			Quantity:     it.Quantity,
			GSTRate:      it.GSTRate,
			UnitPrice:    money.Format(money.FromPaise(it.UnitBasePrice)),
			LineSubtotal: money.Format(money.FromPaise(it.LineSubtotal)),
			GSTAmount:    money.Format(money.FromPaise(it.GSTAmount)),
			LineTotal:    money.Format(money.FromPaise(it.LineTotal)),
		})
	}
	return lines
}

// linesFromSummary reconstructs approximate lines from the human-readable
// item summary when the snapshot lost its structured items. The taxable
// value is distributed proportionally to quantity at the default rate.
func linesFromSummary(order orderdomain.Order, defaultRate float64) []domain.DocumentLine {
	parsed, err := domain.ParseItemSummary(order.ItemSummary())
	if err != nil {
		return nil
	}

	unitPrices := domain.DistributeTaxable(money.FromPaise(order.Subtotal), parsed)
	lines := make([]domain.DocumentLine, 0, len(parsed))
	for i, p := range parsed {
		unit := unitPrices[i]
		sub := money.FromPaise(unit.Paise() * p.Quantity)
		gst := money.FromPaise(sub.Paise() * int64(defaultRate*100) / 10000)
		lines = append(lines, domain.DocumentLine{
			Name:         p.Name,
			Quantity:     p.Quantity,
			GSTRate:      defaultRate,
			UnitPrice:    money.Format(unit),
			LineSubtotal: money.Format(sub),
			GSTAmount:    money.Format(gst),
			LineTotal:    money.Format(sub + gst),
		})
	}
	return lines
}

// invoiceNumberFor derives the document number from the order number so
// regenerating an invoice never changes it.
func invoiceNumberFor(orderNumber string) string {
	if strings.HasPrefix(orderNumber, "ORD-") {
		return "INV-" + strings.TrimPrefix(orderNumber, "ORD-")
	}
	return "INV-" + orderNumber
}
