package server

import (
	"context"
	"net/http"
	"time"

	"github.com/craftshop/backoffice/internal/config"
	customerdomain "github.com/craftshop/backoffice/internal/customer/domain"
	"github.com/craftshop/backoffice/internal/export"
	inventorydomain "github.com/craftshop/backoffice/internal/inventory/domain"
	invoicedomain "github.com/craftshop/backoffice/internal/invoice/domain"
	obsmiddleware "github.com/craftshop/backoffice/internal/observability/logger"
	obsmetrics "github.com/craftshop/backoffice/internal/observability/metrics"
	orderdomain "github.com/craftshop/backoffice/internal/order/domain"
	paymentdomain "github.com/craftshop/backoffice/internal/payment/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: cfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type ServerParams struct {
	fx.In

	Config      config.Config
	Profile     *config.ProfileHolder
	CustomerSvc customerdomain.Service
	ProductSvc  inventorydomain.Service
	OrderSvc    orderdomain.Service
	PaymentSvc  paymentdomain.Service
	InvoiceSvc  invoicedomain.Service
	ExportSvc   *export.Service
}

type Server struct {
	cfg         config.Config
	profile     *config.ProfileHolder
	customerSvc customerdomain.Service
	productSvc  inventorydomain.Service
	orderSvc    orderdomain.Service
	paymentSvc  paymentdomain.Service
	invoiceSvc  invoicedomain.Service
	exportSvc   *export.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		cfg:         p.Config,
		profile:     p.Profile,
		customerSvc: p.CustomerSvc,
		productSvc:  p.ProductSvc,
		orderSvc:    p.OrderSvc,
		paymentSvc:  p.PaymentSvc,
		invoiceSvc:  p.InvoiceSvc,
		exportSvc:   p.ExportSvc,
	}
}

func registerRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api/v1")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PATCH("/customers/:id", s.UpdateCustomer)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProduct)
	api.PATCH("/products/:id", s.UpdateProduct)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/payments", s.RecordPayment)
	api.GET("/orders/:id/payments", s.ListPayments)
	api.POST("/orders/:id/mark-paid", s.MarkOrderPaid)
	api.GET("/orders/:id/invoice", s.RenderInvoice)
	api.GET("/orders/:id/invoice.pdf", s.RenderInvoicePDF)

	api.GET("/exports/orders", s.ExportOrders)
	api.GET("/exports/products", s.ExportProducts)
	api.GET("/exports/customers", s.ExportCustomers)
	api.GET("/exports/payments", s.ExportPayments)

	api.GET("/settings/company", s.GetCompanyProfile)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
