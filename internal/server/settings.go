package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetCompanyProfile returns the letterhead and invoice customization
// currently in effect. Edits happen through the watched company.yml,
// so reads always reflect the latest reload.
func (s *Server) GetCompanyProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.profile.Get()})
}
