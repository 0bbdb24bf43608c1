package server

import (
	"net/http"

	invoicedomain "github.com/craftshop/backoffice/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

// RenderInvoice serves the printable HTML document. The client opens it
// and triggers the browser print dialog; the server's contract ends at
// the rendered document.
func (s *Server) RenderInvoice(c *gin.Context) {
	tpl, err := invoicedomain.ParseTemplateID(c.Query("template"))
	if err != nil {
		AbortWithError(c, newValidationError("template", "unknown_template", "unknown template"))
		return
	}

	out, err := s.invoiceSvc.RenderHTML(c.Request.Context(), invoicedomain.RenderRequest{
		OrderID:  c.Param("id"),
		Template: tpl,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", out)
}

func (s *Server) RenderInvoicePDF(c *gin.Context) {
	out, err := s.invoiceSvc.RenderPDF(c.Request.Context(), invoicedomain.RenderRequest{
		OrderID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="invoice.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
