package server

import (
	"net/http"
	"strings"

	inventorydomain "github.com/craftshop/backoffice/internal/inventory/domain"
	"github.com/craftshop/backoffice/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	BasePrice int64   `json:"base_price"`
	GSTRate   float64 `json:"gst_rate"`
	Stock     int64   `json:"stock"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), inventorydomain.CreateProductRequest{
		SKU:       strings.TrimSpace(req.SKU),
		Name:      strings.TrimSpace(req.Name),
		Category:  strings.TrimSpace(req.Category),
		BasePrice: req.BasePrice,
		GSTRate:   req.GSTRate,
		Stock:     req.Stock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name     string `form:"name"`
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), inventorydomain.ListProductRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Name:      strings.TrimSpace(query.Name),
		Category:  strings.TrimSpace(query.Category),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProduct(c *gin.Context) {
	resp, err := s.productSvc.GetByID(c.Request.Context(), inventorydomain.GetProductRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateProductRequest struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	BasePrice *int64   `json:"base_price"`
	GSTRate   *float64 `json:"gst_rate"`
	Stock     *int64   `json:"stock"`
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), inventorydomain.UpdateProductRequest{
		ID:        c.Param("id"),
		Name:      req.Name,
		Category:  req.Category,
		BasePrice: req.BasePrice,
		GSTRate:   req.GSTRate,
		Stock:     req.Stock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
