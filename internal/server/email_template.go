package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	emailtemplatedomain "github.com/kyberbiz/kyberbiz/internal/emailtemplate/domain"
)

func (s *Server) ListEmailTemplates(c *gin.Context) {
	templates, err := s.emailTemplateSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": templates})
}

func (s *Server) GetEmailTemplate(c *gin.Context) {
	template, err := s.emailTemplateSvc.Get(c.Request.Context(), templateIDParam(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": template})
}

func (s *Server) CreateEmailTemplate(c *gin.Context) {
	var input emailtemplatedomain.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	template, err := s.emailTemplateSvc.Create(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": template})
}

func (s *Server) UpdateEmailTemplate(c *gin.Context) {
	var input emailtemplatedomain.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	template, err := s.emailTemplateSvc.Update(c.Request.Context(), templateIDParam(c), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": template})
}

func (s *Server) DeleteEmailTemplate(c *gin.Context) {
	if err := s.emailTemplateSvc.Delete(c.Request.Context(), templateIDParam(c)); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) SetDefaultEmailTemplate(c *gin.Context) {
	template, err := s.emailTemplateSvc.SetDefault(c.Request.Context(), templateIDParam(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": template})
}

func templateIDParam(c *gin.Context) string {
	return strings.TrimSpace(c.Param("id"))
}
