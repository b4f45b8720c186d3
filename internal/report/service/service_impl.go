package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kyberbiz/kyberbiz/internal/billing"
	reportdomain "github.com/kyberbiz/kyberbiz/internal/report/domain"
)

const recentLimit = 5

type ServiceParam struct {
	fx.In

	Repository reportdomain.Repository
	Logger     *zap.Logger
}

type service struct {
	repo reportdomain.Repository
	log  *zap.Logger
}

func NewService(p ServiceParam) reportdomain.Service {
	return &service{
		repo: p.Repository,
		log:  p.Logger.Named("report.service"),
	}
}

func (s *service) Summary(ctx context.Context, start, end time.Time) (*reportdomain.Summary, error) {
	if end.Before(start) {
		return nil, reportdomain.ErrInvalidRange
	}

	paid, err := s.repo.PaidInvoicesBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ExpensesBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &reportdomain.Summary{Start: start, End: end}
	monthly := map[string]*reportdomain.MonthlyTotals{}
	bucket := func(month string) *reportdomain.MonthlyTotals {
		if b, ok := monthly[month]; ok {
			return b
		}
		b := &reportdomain.MonthlyTotals{Month: month}
		monthly[month] = b
		return b
	}

	for _, row := range paid {
		summary.Revenue += row.Total
		bucket(row.PaidAt.UTC().Format("2006-01")).Revenue += row.Total
	}

	categories := map[string]float64{}
	for _, row := range expenses {
		summary.Expenses += row.Amount
		bucket(row.Date.UTC().Format("2006-01")).Expenses += row.Amount
		name := row.Category
		if name == "" {
			name = "Uncategorized"
		}
		categories[name] += row.Amount
	}

	summary.Revenue = billing.Round2(summary.Revenue)
	summary.Expenses = billing.Round2(summary.Expenses)
	summary.Profit = billing.Round2(summary.Revenue - summary.Expenses)

	summary.Monthly = make([]reportdomain.MonthlyTotals, 0, len(monthly))
	for _, b := range monthly {
		b.Revenue = billing.Round2(b.Revenue)
		b.Expenses = billing.Round2(b.Expenses)
		summary.Monthly = append(summary.Monthly, *b)
	}
	sort.Slice(summary.Monthly, func(i, j int) bool {
		return summary.Monthly[i].Month < summary.Monthly[j].Month
	})

	summary.Categories = make([]reportdomain.CategoryTotal, 0, len(categories))
	for name, total := range categories {
		summary.Categories = append(summary.Categories, reportdomain.CategoryTotal{
			Category: name,
			Total:    billing.Round2(total),
		})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Total != summary.Categories[j].Total {
			return summary.Categories[i].Total > summary.Categories[j].Total
		}
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	return summary, nil
}

func (s *service) Dashboard(ctx context.Context) (*reportdomain.Dashboard, error) {
	dashboard := &reportdomain.Dashboard{}
	var err error

	if dashboard.QuoteCount, err = s.repo.CountQuotes(ctx); err != nil {
		return nil, err
	}
	if dashboard.InvoiceCount, err = s.repo.CountInvoices(ctx); err != nil {
		return nil, err
	}
	if dashboard.ExpenseCount, err = s.repo.CountExpenses(ctx); err != nil {
		return nil, err
	}
	if dashboard.PaidTotal, err = s.repo.PaidTotal(ctx); err != nil {
		return nil, err
	}
	if dashboard.Outstanding, err = s.repo.OutstandingTotal(ctx); err != nil {
		return nil, err
	}
	if dashboard.RecentInvoices, err = s.repo.RecentInvoices(ctx, recentLimit); err != nil {
		return nil, err
	}
	if dashboard.RecentQuotes, err = s.repo.RecentQuotes(ctx, recentLimit); err != nil {
		return nil, err
	}

	dashboard.PaidTotal = billing.Round2(dashboard.PaidTotal)
	dashboard.Outstanding = billing.Round2(dashboard.Outstanding)
	return dashboard, nil
}
