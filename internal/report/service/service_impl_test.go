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
	invoicedomain "github.com/kyberbiz/kyberbiz/internal/invoice/domain"
	quotedomain "github.com/kyberbiz/kyberbiz/internal/quote/domain"
	reportdomain "github.com/kyberbiz/kyberbiz/internal/report/domain"
	"github.com/kyberbiz/kyberbiz/internal/report/repository"
)

type fixture struct {
	svc  reportdomain.Service
	db   *gorm.DB
	node *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:report_svc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&quotedomain.Quote{},
		&invoicedomain.Invoice{},
		&expensedomain.Expense{},
		&expensedomain.Category{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		Repository: repository.NewRepository(db),
		Logger:     zaptest.NewLogger(t),
	})
	return &fixture{svc: svc, db: db, node: node}
}

func (f *fixture) seedInvoice(t *testing.T, status invoicedomain.InvoiceStatus, total float64, paidAt *time.Time) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, f.db.Create(&invoicedomain.Invoice{
		ID:         f.node.Generate(),
		Number:     "INV-TEST-" + f.node.Generate().String(),
		ClientName: "Acme",
		Total:      total,
		Status:     status,
		PaidAt:     paidAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error)
}

func (f *fixture) seedExpense(t *testing.T, amount float64, date time.Time, category string) {
	t.Helper()
	cat := &expensedomain.Category{ID: f.node.Generate(), Name: category + "-" + f.node.Generate().String(), CreatedAt: date}
	require.NoError(t, f.db.Create(cat).Error)
	require.NoError(t, f.db.Create(&expensedomain.Expense{
		ID:          f.node.Generate(),
		Description: "expense",
		Amount:      amount,
		Date:        date,
		CategoryID:  cat.ID,
		CreatedAt:   date,
		UpdatedAt:   date,
	}).Error)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	f.seedInvoice(t, invoicedomain.StatusPaid, 110, &jan)
	f.seedInvoice(t, invoicedomain.StatusPaid, 220, &feb)
	f.seedInvoice(t, invoicedomain.StatusSent, 999, nil) // unpaid: not revenue
	f.seedExpense(t, 50, jan, "Hosting")
	f.seedExpense(t, 30, feb, "Travel")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)

	summary, err := f.svc.Summary(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, 330.0, summary.Revenue)
	assert.Equal(t, 80.0, summary.Expenses)
	assert.Equal(t, 250.0, summary.Profit)

	require.Len(t, summary.Monthly, 2)
	assert.Equal(t, "2026-01", summary.Monthly[0].Month)
	assert.Equal(t, 110.0, summary.Monthly[0].Revenue)
	assert.Equal(t, 50.0, summary.Monthly[0].Expenses)
	assert.Equal(t, "2026-02", summary.Monthly[1].Month)

	require.Len(t, summary.Categories, 2)
	assert.Equal(t, 50.0, summary.Categories[0].Total, "largest category first")
}

func TestSummaryRange(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.svc.Summary(context.Background(), start, start.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, reportdomain.ErrInvalidRange)
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	paidAt := time.Now().UTC()
	f.seedInvoice(t, invoicedomain.StatusPaid, 100, &paidAt)
	f.seedInvoice(t, invoicedomain.StatusDraft, 60, nil)
	f.seedInvoice(t, invoicedomain.StatusSent, 40, nil)

	dashboard, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dashboard.InvoiceCount)
	assert.Equal(t, 100.0, dashboard.PaidTotal)
	assert.Equal(t, 100.0, dashboard.Outstanding)
	assert.LessOrEqual(t, len(dashboard.RecentInvoices), 5)
}
