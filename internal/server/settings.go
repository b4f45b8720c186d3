package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingsdomain "github.com/kyberbiz/kyberbiz/internal/settings/domain"
)

func (s *Server) GetBranding(c *gin.Context) {
	branding, err := s.settingsSvc.Branding(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": branding})
}

func (s *Server) SaveBranding(c *gin.Context) {
	var input settingsdomain.BrandingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	branding, err := s.settingsSvc.SaveBranding(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": branding})
}

// GetPublicBranding backs the payment page; no actor required.
func (s *Server) GetPublicBranding(c *gin.Context) {
	branding, err := s.settingsSvc.PublicBranding(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": branding})
}

func (s *Server) GetSMTP(c *gin.Context) {
	view, err := s.settingsSvc.SMTP(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) SaveSMTP(c *gin.Context) {
	var input settingsdomain.SMTPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	view, err := s.settingsSvc.SaveSMTP(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) GetPayPal(c *gin.Context) {
	view, err := s.settingsSvc.PayPal(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) SavePayPal(c *gin.Context) {
	var input settingsdomain.PayPalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	view, err := s.settingsSvc.SavePayPal(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}
