// Package dashboard composes the headline figures shown on the dashboard.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// GetSummaryInput selects the month. Zero values default to the current
// calendar month.
type GetSummaryInput struct {
	Month time.Month
	Year  int
}

// GetSummaryOutput carries the headline dashboard figures.
type GetSummaryOutput struct {
	NetWorth         decimal.Decimal
	MonthlyIncome    decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	MonthlyBalance   decimal.Decimal
	SavingsRate      decimal.Decimal
	TotalAssetValue  decimal.Decimal
	ProjectedBalance decimal.Decimal
	Allocation       []metrics.TypeAllocation
}

// GetSummaryUseCase recomputes the dashboard summary from the current
// collections on every call. Nothing is cached; at this data scale a full
// recompute is cheaper than invalidation would be.
type GetSummaryUseCase struct {
	transactions adapter.TransactionStore
	assets       adapter.AssetStore
	now          func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactions adapter.TransactionStore,
	assets adapter.AssetStore,
	now func() time.Time,
) *GetSummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetSummaryUseCase{
		transactions: transactions,
		assets:       assets,
		now:          now,
	}
}

// Execute computes the summary for the requested month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := uc.now()
	month, year := input.Month, input.Year
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}

	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := uc.assets.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := metrics.CalculateMonthlyTotals(transactions, month, year)
	portfolio := metrics.SummarizePortfolio(assets)

	return &GetSummaryOutput{
		NetWorth:         metrics.CalculateNetWorth(assets, transactions),
		MonthlyIncome:    totals.Income,
		MonthlyExpenses:  totals.Expenses,
		MonthlyBalance:   totals.Balance(),
		SavingsRate:      metrics.CalculateSavingsRate(totals.Income, totals.Expenses),
		TotalAssetValue:  portfolio.TotalValue,
		ProjectedBalance: metrics.PredictMonthEndBalance(transactions, totals.Balance(), now),
		Allocation:       portfolio.Allocation,
	}, nil
}
