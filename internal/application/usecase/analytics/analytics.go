// Package analytics contains the chart-feeding use cases: breakdowns,
// comparisons, heatmap, needs-vs-wants and lifestyle inflation.
package analytics

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// comparisonMonths is the default span of the month-by-month series.
const comparisonMonths = 6

// MonthInput selects a calendar month. Zero values default to the current
// month.
type MonthInput struct {
	Month time.Month
	Year  int
}

func (in MonthInput) resolve(now time.Time) (time.Month, int) {
	month, year := in.Month, in.Year
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

// AnalyticsUseCase serves the analytics views. Every call recomputes from a
// fresh snapshot of the transaction collection.
type AnalyticsUseCase struct {
	transactions adapter.TransactionStore
	now          func() time.Time
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase instance.
func NewAnalyticsUseCase(transactions adapter.TransactionStore, now func() time.Time) *AnalyticsUseCase {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsUseCase{transactions: transactions, now: now}
}

// GetBreakdown returns the month's per-category expense totals.
func (uc *AnalyticsUseCase) GetBreakdown(ctx context.Context, input MonthInput) ([]metrics.CategoryTotal, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	month, year := input.resolve(uc.now())
	return metrics.CategoryBreakdown(transactions, month, year), nil
}

// GetComparison returns the income/expense series for the trailing months.
func (uc *AnalyticsUseCase) GetComparison(ctx context.Context) ([]metrics.MonthPoint, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.MonthlyComparison(transactions, comparisonMonths, uc.now()), nil
}

// GetHeatmap returns the month's per-day cash flow.
func (uc *AnalyticsUseCase) GetHeatmap(ctx context.Context, input MonthInput) ([]metrics.DayFlow, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	month, year := input.resolve(uc.now())
	return metrics.CashFlowHeatmap(transactions, month, year), nil
}

// GetNeedsWants returns the month's needs/wants/other split.
func (uc *AnalyticsUseCase) GetNeedsWants(ctx context.Context, input MonthInput) (metrics.NeedsWantsSplit, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return metrics.NeedsWantsSplit{}, err
	}
	month, year := input.resolve(uc.now())
	return metrics.NeedsVsWants(transactions, month, year), nil
}

// GetInflation returns the trailing expense trend and its first-to-last
// percentage change.
func (uc *AnalyticsUseCase) GetInflation(ctx context.Context) (metrics.LifestyleInflation, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return metrics.LifestyleInflation{}, err
	}
	return metrics.CalculateLifestyleInflation(transactions, comparisonMonths, uc.now()), nil
}
