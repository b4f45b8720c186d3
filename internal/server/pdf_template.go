package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyberbiz/kyberbiz/internal/document"
)

// ListPDFTemplates exposes the available PDF themes as id/name pairs so
// clients can populate a theme picker.
func (s *Server) ListPDFTemplates(c *gin.Context) {
	themes := document.Themes()

	out := make([]gin.H, 0, len(themes))
	for _, theme := range themes {
		out = append(out, gin.H{"id": theme.ID, "name": theme.Name})
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}
