package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	expensedomain "github.com/kyberbiz/kyberbiz/internal/expense/domain"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) expensedomain.Repository {
	return &repository{db: db}
}

func (r *repository) CreateExpense(ctx context.Context, expense *expensedomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *repository) ListExpenses(ctx context.Context) ([]expensedomain.Expense, error) {
	var expenses []expensedomain.Expense
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *repository) FindExpenseByID(ctx context.Context, id snowflake.ID) (*expensedomain.Expense, error) {
	var expense expensedomain.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *repository) UpdateExpense(ctx context.Context, expense *expensedomain.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *repository) DeleteExpense(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&expensedomain.Expense{}, "id = ?", id).Error
}

func (r *repository) CountExpensesByCategory(ctx context.Context, categoryID snowflake.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&expensedomain.Expense{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountExpensesByVendor(ctx context.Context, vendorID snowflake.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&expensedomain.Expense{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateCategory(ctx context.Context, category *expensedomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *repository) ListCategories(ctx context.Context) ([]expensedomain.Category, error) {
	var categories []expensedomain.Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) FindCategoryByID(ctx context.Context, id snowflake.ID) (*expensedomain.Category, error) {
	var category expensedomain.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) DeleteCategory(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&expensedomain.Category{}, "id = ?", id).Error
}

func (r *repository) CreateVendor(ctx context.Context, vendor *expensedomain.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *repository) ListVendors(ctx context.Context) ([]expensedomain.Vendor, error) {
	var vendors []expensedomain.Vendor
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *repository) FindVendorByID(ctx context.Context, id snowflake.ID) (*expensedomain.Vendor, error) {
	var vendor expensedomain.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *repository) DeleteVendor(ctx context.Context, id snowflake.ID) error {
	return r.db.WithContext(ctx).
		Delete(&expensedomain.Vendor{}, "id = ?", id).Error
}
