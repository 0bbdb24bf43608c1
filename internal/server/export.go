package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/craftshop/backoffice/internal/export"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) ExportOrders(c *gin.Context) {
	s.serveSheet(c, "Orders", s.exportSvc.Orders)
}

func (s *Server) ExportProducts(c *gin.Context) {
	s.serveSheet(c, "Products", s.exportSvc.Products)
}

func (s *Server) ExportCustomers(c *gin.Context) {
	s.serveSheet(c, "Customers", s.exportSvc.Customers)
}

func (s *Server) ExportPayments(c *gin.Context) {
	s.serveSheet(c, "Payments", s.exportSvc.Payments)
}

func (s *Server) serveSheet(c *gin.Context, domainName string, build func(context.Context) (export.Sheet, error)) {
	sheet, err := build(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data, err := sheet.WriteXLSX()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := export.Filename(domainName, time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
