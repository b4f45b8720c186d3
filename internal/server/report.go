package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ReportSummary(c *gin.Context) {
	start, err := parseTimeQuery(c.Query("start"), false)
	if err != nil {
		AbortWithError(c, newValidationError("start", "invalid_start", "invalid start"))
		return
	}
	end, err := parseTimeQuery(c.Query("end"), true)
	if err != nil {
		AbortWithError(c, newValidationError("end", "invalid_end", "invalid end"))
		return
	}

	summary, err := s.reportSvc.Summary(c.Request.Context(), start, end)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

func (s *Server) ReportDashboard(c *gin.Context) {
	dashboard, err := s.reportSvc.Dashboard(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dashboard})
}
