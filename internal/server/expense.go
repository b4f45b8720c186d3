package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
)

func (s *Server) CreateExpense(c *gin.Context) {
	var input expensedomain.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	expense, err := s.expenseSvc.CreateExpense(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": expense})
}

func (s *Server) ListExpenses(c *gin.Context) {
	expenses, err := s.expenseSvc.ListExpenses(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func (s *Server) GetExpense(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	expense, err := s.expenseSvc.GetExpense(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expense})
}

func (s *Server) UpdateExpense(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var input expensedomain.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	expense, err := s.expenseSvc.UpdateExpense(c.Request.Context(), id, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": expense})
}

func (s *Server) DeleteExpense(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.expenseSvc.DeleteExpense(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) CreateCategory(c *gin.Context) {
	var input expensedomain.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	category, err := s.expenseSvc.CreateCategory(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": category})
}

func (s *Server) ListCategories(c *gin.Context) {
	categories, err := s.expenseSvc.ListCategories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (s *Server) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.expenseSvc.DeleteCategory(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) CreateVendor(c *gin.Context) {
	var input expensedomain.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	vendor, err := s.expenseSvc.CreateVendor(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": vendor})
}

func (s *Server) ListVendors(c *gin.Context) {
	vendors, err := s.expenseSvc.ListVendors(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vendors})
}

func (s *Server) DeleteVendor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.expenseSvc.DeleteVendor(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
