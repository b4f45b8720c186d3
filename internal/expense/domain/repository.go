package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	CreateExpense(ctx context.Context, expense *Expense) error
	// ListExpenses returns expenses newest first by date.
	ListExpenses(ctx context.Context) ([]Expense, error)
	FindExpenseByID(ctx context.Context, id snowflake.ID) (*Expense, error)
	UpdateExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, id snowflake.ID) error
	CountExpensesByCategory(ctx context.Context, categoryID snowflake.ID) (int64, error)
	CountExpensesByVendor(ctx context.Context, vendorID snowflake.ID) (int64, error)

	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context) ([]Category, error)
	FindCategoryByID(ctx context.Context, id snowflake.ID) (*Category, error)
	DeleteCategory(ctx context.Context, id snowflake.ID) error

	CreateVendor(ctx context.Context, vendor *Vendor) error
	ListVendors(ctx context.Context) ([]Vendor, error)
	FindVendorByID(ctx context.Context, id snowflake.ID) (*Vendor, error)
	DeleteVendor(ctx context.Context, id snowflake.ID) error
}
