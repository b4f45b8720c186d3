package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
	"github.com/kyberbiz/kyberbiz/pkg/db"
)

type ServiceParam struct {
	fx.In

	Repository expensedomain.Repository
	Node       *snowflake.Node
	Logger     *zap.Logger
}

type service struct {
	repo expensedomain.Repository
	node *snowflake.Node
	log  *zap.Logger
}

func NewService(p ServiceParam) expensedomain.Service {
	return &service{
		repo: p.Repository,
		node: p.Node,
		log:  p.Logger.Named("expense.service"),
	}
}

// checkReferences verifies the category and optional vendor exist before a
// write; an unknown reference is a validation failure, not a 500.
func (s *service) checkReferences(ctx context.Context, input expensedomain.ExpenseInput) error {
	category, err := s.repo.FindCategoryByID(ctx, input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return expensedomain.ErrUnknownCategory
	}
	if input.VendorID != nil {
		vendor, err := s.repo.FindVendorByID(ctx, *input.VendorID)
		if err != nil {
			return err
		}
		if vendor == nil {
			return expensedomain.ErrUnknownVendor
		}
	}
	return nil
}

func (s *service) CreateExpense(ctx context.Context, input expensedomain.ExpenseInput) (*expensedomain.Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	expense := &expensedomain.Expense{
		ID:          s.node.Generate(),
		Description: input.Description,
		Amount:      input.Amount,
		Date:        date,
		CategoryID:  input.CategoryID,
		VendorID:    input.VendorID,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	s.log.Info("expense created",
		zap.String("expense_id", expense.ID.String()),
		zap.Float64("amount", expense.Amount),
	)
	return expense, nil
}

func (s *service) ListExpenses(ctx context.Context) ([]expensedomain.Expense, error) {
	return s.repo.ListExpenses(ctx)
}

func (s *service) GetExpense(ctx context.Context, id snowflake.ID) (*expensedomain.Expense, error) {
	expense, err := s.repo.FindExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, expensedomain.ErrNotFound
	}
	return expense, nil
}

func (s *service) UpdateExpense(ctx context.Context, id snowflake.ID, input expensedomain.ExpenseInput) (*expensedomain.Expense, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	expense.Description = input.Description
	expense.Amount = input.Amount
	if !input.Date.IsZero() {
		expense.Date = input.Date
	}
	expense.CategoryID = input.CategoryID
	expense.VendorID = input.VendorID
	expense.Notes = input.Notes
	expense.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *service) DeleteExpense(ctx context.Context, id snowflake.ID) error {
	if _, err := s.GetExpense(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteExpense(ctx, id)
}

func (s *service) CreateCategory(ctx context.Context, input expensedomain.CategoryInput) (*expensedomain.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, expensedomain.ErrInvalidName
	}
	category := &expensedomain.Category{
		ID:        s.node.Generate(),
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, expensedomain.ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (s *service) ListCategories(ctx context.Context) ([]expensedomain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) DeleteCategory(ctx context.Context, id snowflake.ID) error {
	category, err := s.repo.FindCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return expensedomain.ErrNotFound
	}
	count, err := s.repo.CountExpensesByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return expensedomain.ErrInUse
	}
	return s.repo.DeleteCategory(ctx, id)
}

func (s *service) CreateVendor(ctx context.Context, input expensedomain.VendorInput) (*expensedomain.Vendor, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, expensedomain.ErrInvalidName
	}
	vendor := &expensedomain.Vendor{
		ID:        s.node.Generate(),
		Name:      strings.TrimSpace(input.Name),
		Email:     input.Email,
		Phone:     input.Phone,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateVendor(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *service) ListVendors(ctx context.Context) ([]expensedomain.Vendor, error) {
	return s.repo.ListVendors(ctx)
}

func (s *service) DeleteVendor(ctx context.Context, id snowflake.ID) error {
	vendor, err := s.repo.FindVendorByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return expensedomain.ErrNotFound
	}
	count, err := s.repo.CountExpensesByVendor(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return expensedomain.ErrInUse
	}
	return s.repo.DeleteVendor(ctx, id)
}
