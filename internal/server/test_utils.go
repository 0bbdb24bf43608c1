package server

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/craftshop/backoffice/internal/config"
	customerrepo "github.com/craftshop/backoffice/internal/customer/repository"
	customersvc "github.com/craftshop/backoffice/internal/customer/service"
	"github.com/craftshop/backoffice/internal/export"
	inventoryrepo "github.com/craftshop/backoffice/internal/inventory/repository"
	inventorysvc "github.com/craftshop/backoffice/internal/inventory/service"
	invoicerender "github.com/craftshop/backoffice/internal/invoice/render"
	invoicesvc "github.com/craftshop/backoffice/internal/invoice/service"
	"github.com/craftshop/backoffice/internal/migration"
	obsmetrics "github.com/craftshop/backoffice/internal/observability/metrics"
	orderrepo "github.com/craftshop/backoffice/internal/order/repository"
	ordersvc "github.com/craftshop/backoffice/internal/order/service"
	paymentrepo "github.com/craftshop/backoffice/internal/payment/repository"
	paymentsvc "github.com/craftshop/backoffice/internal/payment/service"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer wires the full service stack over an in-memory database
// and returns a router ready for httptest requests.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.RunMigrations(gdb))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()

	custRepo := customerrepo.Provide()
	prodRepo := inventoryrepo.Provide()
	ordRepo := orderrepo.Provide()
	payRepo := paymentrepo.Provide()

	customerService := customersvc.New(customersvc.Params{DB: gdb, Log: log, GenID: node, Repo: custRepo})
	productService := inventorysvc.New(inventorysvc.Params{DB: gdb, Log: log, GenID: node, Repo: prodRepo})
	orderService := ordersvc.New(ordersvc.Params{
		DB: gdb, Log: log, GenID: node,
		Repo: ordRepo, CustomerRepo: custRepo, InventoryRepo: prodRepo,
	})
	paymentService := paymentsvc.New(paymentsvc.Params{
		DB: gdb, Log: log, GenID: node,
		Repo: payRepo, OrderRepo: ordRepo,
	})

	profile := config.NewStaticProfileHolder(config.DefaultCompanyProfile())

	htmlRenderer, err := invoicerender.NewHTML()
	require.NoError(t, err)
	invoiceService := invoicesvc.New(invoicesvc.Params{
		DB: gdb, Log: log, Profile: profile,
		OrderRepo: ordRepo, CustomerRepo: custRepo,
		HTML: htmlRenderer, PDF: invoicerender.NewPDF(),
	})

	exportService := export.New(export.Params{DB: gdb, Log: log})

	cfg := config.Config{Environment: "test", HTTPAddr: ":0"}
	engine := NewEngine(cfg, obsmetrics.NewHTTPMetricsWith(prometheus.NewRegistry()))
	srv := NewServer(ServerParams{
		Config:      cfg,
		Profile:     profile,
		CustomerSvc: customerService,
		ProductSvc:  productService,
		OrderSvc:    orderService,
		PaymentSvc:  paymentService,
		InvoiceSvc:  invoiceService,
		ExportSvc:   exportService,
	})
	registerRoutes(engine, srv)

	return engine, gdb
}
