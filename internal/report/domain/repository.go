package domain

import (
	"context"
	"time"

	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
)

// PaidInvoice is the slice of an invoice the summary needs.
type PaidInvoice struct {
	PaidAt time.Time
	Total  float64
}

// ExpenseRow is the slice of an expense the summary needs.
type ExpenseRow struct {
	Date     time.Time
	Amount   float64
	Category string
}

type Repository interface {
	PaidInvoicesBetween(ctx context.Context, start, end time.Time) ([]PaidInvoice, error)
	ExpensesBetween(ctx context.Context, start, end time.Time) ([]ExpenseRow, error)

	CountQuotes(ctx context.Context) (int64, error)
	CountInvoices(ctx context.Context) (int64, error)
	CountExpenses(ctx context.Context) (int64, error)
	PaidTotal(ctx context.Context) (float64, error)
	OutstandingTotal(ctx context.Context) (float64, error)
	RecentInvoices(ctx context.Context, limit int) ([]invoicedomain.Invoice, error)
	RecentQuotes(ctx context.Context, limit int) ([]quotedomain.Quote, error)
}
