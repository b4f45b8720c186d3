package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
	"github.com/kyberbiz/kyberbiz/internal/expense/repository"
)

func newTestService(t *testing.T) expensedomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:expense_svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&expensedomain.Expense{},
		&expensedomain.Category{},
		&expensedomain.Vendor{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		Repository: repository.NewRepository(db),
		Node:       node,
		Logger:     zaptest.NewLogger(t),
	})
}

func seedCategory(t *testing.T, svc expensedomain.Service, name string) *expensedomain.Category {
	t.Helper()
	category, err := svc.CreateCategory(context.Background(), expensedomain.CategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func TestCreateExpenseValidatesReferences(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	category := seedCategory(t, svc, "Software")

	_, err := svc.CreateExpense(ctx, expensedomain.ExpenseInput{
		Description: "IDE license",
		Amount:      99.0,
		CategoryID:  snowflake.ID(424242),
	})
	assert.ErrorIs(t, err, expensedomain.ErrUnknownCategory)

	unknownVendor := snowflake.ID(535353)
	_, err = svc.CreateExpense(ctx, expensedomain.ExpenseInput{
		Description: "IDE license",
		Amount:      99.0,
		CategoryID:  category.ID,
		VendorID:    &unknownVendor,
	})
	assert.ErrorIs(t, err, expensedomain.ErrUnknownVendor)

	expense, err := svc.CreateExpense(ctx, expensedomain.ExpenseInput{
		Description: "IDE license",
		Amount:      99.0,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, category.ID, expense.CategoryID)
	assert.False(t, expense.Date.IsZero(), "date defaults to now")
}

func TestExpenseInputValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	category := seedCategory(t, svc, "Travel")

	_, err := svc.CreateExpense(ctx, expensedomain.ExpenseInput{Amount: 10, CategoryID: category.ID})
	assert.ErrorIs(t, err, expensedomain.ErrInvalidDescription)

	_, err = svc.CreateExpense(ctx, expensedomain.ExpenseInput{Description: "Taxi", Amount: 0, CategoryID: category.ID})
	assert.ErrorIs(t, err, expensedomain.ErrInvalidAmount)

	_, err = svc.CreateExpense(ctx, expensedomain.ExpenseInput{Description: "Taxi", Amount: -5, CategoryID: category.ID})
	assert.ErrorIs(t, err, expensedomain.ErrInvalidAmount)
}

func TestUpdateAndDeleteExpense(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	category := seedCategory(t, svc, "Office")

	expense, err := svc.CreateExpense(ctx, expensedomain.ExpenseInput{
		Description: "Desk",
		Amount:      250,
		Date:        time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateExpense(ctx, expense.ID, expensedomain.ExpenseInput{
		Description: "Standing desk",
		Amount:      400,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Standing desk", updated.Description)
	assert.Equal(t, 400.0, updated.Amount)
	assert.Equal(t, expense.Date, updated.Date, "zero date keeps the stored one")

	require.NoError(t, svc.DeleteExpense(ctx, expense.ID))
	_, err = svc.GetExpense(ctx, expense.ID)
	assert.ErrorIs(t, err, expensedomain.ErrNotFound)
}

func TestDeleteCategoryInUse(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	category := seedCategory(t, svc, "Hosting")

	_, err := svc.CreateExpense(ctx, expensedomain.ExpenseInput{
		Description: "Server",
		Amount:      40,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, category.ID), expensedomain.ErrInUse)

	empty := seedCategory(t, svc, "Empty")
	require.NoError(t, svc.DeleteCategory(ctx, empty.ID))
}

func TestVendors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	category := seedCategory(t, svc, "Services")

	vendor, err := svc.CreateVendor(ctx, expensedomain.VendorInput{Name: "CloudCo", Email: "ap@cloudco.test"})
	require.NoError(t, err)

	_, err = svc.CreateExpense(ctx, expensedomain.ExpenseInput{
		Description: "Compute",
		Amount:      120,
		CategoryID:  category.ID,
		VendorID:    &vendor.ID,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteVendor(ctx, vendor.ID), expensedomain.ErrInUse)

	vendors, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 1)
}
