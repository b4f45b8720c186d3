package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	reportdomain "github.com/kyberbiz/kyberbiz/internal/report/domain"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) reportdomain.Repository {
	return &repository{db: db}
}

func (r *repository) PaidInvoicesBetween(ctx context.Context, start, end time.Time) ([]reportdomain.PaidInvoice, error) {
	var rows []reportdomain.PaidInvoice
	err := r.db.WithContext(ctx).Raw(
		`SELECT paid_at, total
		 FROM invoices
		 WHERE status = ? AND paid_at >= ? AND paid_at <= ?`,
		invoicedomain.StatusPaid, start, end,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ExpensesBetween(ctx context.Context, start, end time.Time) ([]reportdomain.ExpenseRow, error) {
	var rows []reportdomain.ExpenseRow
	err := r.db.WithContext(ctx).Raw(
		`SELECT e.date AS date, e.amount AS amount, c.name AS category
		 FROM expenses e
		 LEFT JOIN categories c ON c.id = e.category_id
		 WHERE e.date >= ? AND e.date <= ?`,
		start, end,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CountQuotes(ctx context.Context) (int64, error) {
	return r.count(ctx, &quotedomain.Quote{})
}

func (r *repository) CountInvoices(ctx context.Context) (int64, error) {
	return r.count(ctx, &invoicedomain.Invoice{})
}

func (r *repository) CountExpenses(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("expenses").
		Count(&count).Error
	return count, err
}

func (r *repository) count(ctx context.Context, model interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(model).
		Count(&count).Error
	return count, err
}

func (r *repository) PaidTotal(ctx context.Context) (float64, error) {
	return r.sumInvoices(ctx, "status = ?", invoicedomain.StatusPaid)
}

func (r *repository) OutstandingTotal(ctx context.Context) (float64, error) {
	return r.sumInvoices(ctx, "status <> ?", invoicedomain.StatusPaid)
}

func (r *repository) sumInvoices(ctx context.Context, cond string, args ...interface{}) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Select("SUM(total)").
		Where(cond, args...).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *repository) RecentInvoices(ctx context.Context, limit int) ([]invoicedomain.Invoice, error) {
	var invoices []invoicedomain.Invoice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repository) RecentQuotes(ctx context.Context, limit int) ([]quotedomain.Quote, error) {
	var quotes []quotedomain.Quote
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}
