package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	CreateExpense(ctx context.Context, input ExpenseInput) (*Expense, error)
	ListExpenses(ctx context.Context) ([]Expense, error)
	GetExpense(ctx context.Context, id snowflake.ID) (*Expense, error)
	UpdateExpense(ctx context.Context, id snowflake.ID, input ExpenseInput) (*Expense, error)
	DeleteExpense(ctx context.Context, id snowflake.ID) error

	CreateCategory(ctx context.Context, input CategoryInput) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	// DeleteCategory fails while expenses still reference the category.
	DeleteCategory(ctx context.Context, id snowflake.ID) error

	CreateVendor(ctx context.Context, input VendorInput) (*Vendor, error)
	ListVendors(ctx context.Context) ([]Vendor, error)
	// DeleteVendor fails while expenses still reference the vendor.
	DeleteVendor(ctx context.Context, id snowflake.ID) error
}
