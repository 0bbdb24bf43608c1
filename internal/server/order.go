package server

import (
	"net/http"
	"strings"
	"time"

	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/craftshop/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type orderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type initialPaymentRequest struct {
	Amount int64  `json:"amount"`
	Method string `json:"method"`
	Note   string `json:"note"`
}

type createOrderRequest struct {
	CustomerID     string                 `json:"customer_id"`
	OrderDate      string                 `json:"order_date"`
	Lines          []orderLineRequest     `json:"lines"`
	ShippingCost   int64                  `json:"shipping_cost"`
	Discount       int64                  `json:"discount"`
	Notes          string                 `json:"notes"`
	InitialPayment *initialPaymentRequest `json:"initial_payment"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	orderDate, err := parseOptionalDate(req.OrderDate)
	if err != nil {
		AbortWithError(c, newValidationError("order_date", "invalid_order_date", "invalid order_date"))
		return
	}

	lines := make([]orderdomain.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, orderdomain.OrderLineInput{
			ProductID: strings.TrimSpace(l.ProductID),
			Quantity:  l.Quantity,
		})
	}

	createReq := orderdomain.CreateOrderRequest{
		CustomerID:   strings.TrimSpace(req.CustomerID),
		OrderDate:    orderDate,
		Lines:        lines,
		ShippingCost: req.ShippingCost,
		Discount:     req.Discount,
		Notes:        req.Notes,
	}
	if req.InitialPayment != nil {
		createReq.InitialPayment = &orderdomain.InitialPaymentInput{
			Amount: req.InitialPayment.Amount,
			Method: paymentdomain.Method(strings.TrimSpace(req.InitialPayment.Method)),
			Note:   strings.TrimSpace(req.InitialPayment.Note),
		}
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), createReq)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrders(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CustomerID    string `form:"customer_id"`
		PaymentStatus string `form:"payment_status"`
		DateFrom      string `form:"date_from"`
		DateTo        string `form:"date_to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dateFrom, err := parseOptionalDate(query.DateFrom)
	if err != nil {
		AbortWithError(c, newValidationError("date_from", "invalid_date_from", "invalid date_from"))
		return
	}
	dateTo, err := parseOptionalDate(query.DateTo)
	if err != nil {
		AbortWithError(c, newValidationError("date_to", "invalid_date_to", "invalid date_to"))
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListOrderRequest{
		PageToken:     query.PageToken,
		PageSize:      int32(query.PageSize),
		CustomerID:    strings.TrimSpace(query.CustomerID),
		PaymentStatus: strings.TrimSpace(query.PaymentStatus),
		DateFrom:      dateFrom,
		DateTo:        dateTo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrder(c *gin.Context) {
	resp, err := s.orderSvc.GetByID(c.Request.Context(), orderdomain.GetOrderRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type recordPaymentRequest struct {
	Amount int64  `json:"amount"`
	Method string `json:"method"`
	Note   string `json:"note"`
	PaidAt string `json:"paid_at"`
}

func (s *Server) RecordPayment(c *gin.Context) {
	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paidAt, err := parseOptionalDate(req.PaidAt)
	if err != nil {
		AbortWithError(c, newValidationError("paid_at", "invalid_paid_at", "invalid paid_at"))
		return
	}

	resp, err := s.paymentSvc.Record(c.Request.Context(), paymentdomain.RecordPaymentRequest{
		OrderID: c.Param("id"),
		Amount:  req.Amount,
		Method:  paymentdomain.Method(strings.TrimSpace(req.Method)),
		Note:    req.Note,
		PaidAt:  paidAt,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	resp, err := s.paymentSvc.LedgerForOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type markPaidRequest struct {
	Method string `json:"method"`
}

func (s *Server) MarkOrderPaid(c *gin.Context) {
	var req markPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.MarkFullyPaid(c.Request.Context(), paymentdomain.MarkFullyPaidRequest{
		OrderID: c.Param("id"),
		Method:  paymentdomain.Method(strings.TrimSpace(req.Method)),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// parseOptionalDate accepts RFC3339 timestamps or bare dates; empty input
// yields nil.
func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
