package domain

import (
	"time"

	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
)

// MonthlyTotals is one month bucket of the profit/loss chart.
type MonthlyTotals struct {
	Month    string  `json:"month"` // YYYY-MM
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// CategoryTotal is the expense breakdown per category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Summary is the profit/loss report over a date range. Revenue counts
// invoices paid inside the range; expenses count by expense date.
type Summary struct {
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	Revenue    float64         `json:"revenue"`
	Expenses   float64         `json:"expenses"`
	Profit     float64         `json:"profit"`
	Monthly    []MonthlyTotals `json:"monthly"`
	Categories []CategoryTotal `json:"categories"`
}

// Dashboard is the landing-page overview.
type Dashboard struct {
	QuoteCount     int64                   `json:"quote_count"`
	InvoiceCount   int64                   `json:"invoice_count"`
	ExpenseCount   int64                   `json:"expense_count"`
	PaidTotal      float64                 `json:"paid_total"`
	Outstanding    float64                 `json:"outstanding"`
	RecentInvoices []invoicedomain.Invoice `json:"recent_invoices"`
	RecentQuotes   []quotedomain.Quote     `json:"recent_quotes"`
}
