// Package insights composes the derived metrics into the smart-insights view
// and, when configured, an AI-narrated recommendation list.
package insights

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// GetInsightsOutput carries the rule-based insight results plus the optional
// advisor recommendations.
type GetInsightsOutput struct {
	Anomalies        []metrics.Anomaly
	Recurring        []metrics.RecurringExpense
	ProjectedBalance decimal.Decimal
	EmergencyFund    metrics.EmergencyFund
	Recommendations  []string
	AdvisorUsed      bool
}

// GetInsightsUseCase recomputes all insight metrics and optionally asks the
// advisor to narrate them. The advisor is strictly additive: when it is
// unconfigured or failing, the rule-based results are served alone.
type GetInsightsUseCase struct {
	transactions adapter.TransactionStore
	assets       adapter.AssetStore
	advisor      adapter.AdvisorService
	now          func() time.Time
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	transactions adapter.TransactionStore,
	assets adapter.AssetStore,
	advisor adapter.AdvisorService,
	now func() time.Time,
) *GetInsightsUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetInsightsUseCase{
		transactions: transactions,
		assets:       assets,
		advisor:      advisor,
		now:          now,
	}
}

// Execute computes the insight set for the current month.
func (uc *GetInsightsUseCase) Execute(ctx context.Context) (*GetInsightsOutput, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := uc.assets.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	totals := metrics.CalculateMonthlyTotals(transactions, now.Month(), now.Year())

	out := &GetInsightsOutput{
		Anomalies:        metrics.DetectAnomalies(transactions, now),
		Recurring:        metrics.DetectRecurringExpenses(transactions),
		ProjectedBalance: metrics.PredictMonthEndBalance(transactions, totals.Balance(), now),
		EmergencyFund:    metrics.CalculateEmergencyFund(totals.Balance(), totals.Expenses),
	}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return out, nil
	}

	request := uc.buildAdvisorRequest(now, totals, out, metrics.DetectAllocationDrift(assets))
	recommendations, err := uc.advisor.Recommend(ctx, request)
	if err != nil {
		// Advisor failures degrade to the rule-based view.
		slog.Warn("Advisor unavailable, serving rule-based insights", "error", err)
		return out, nil
	}
	out.Recommendations = recommendations
	out.AdvisorUsed = true
	return out, nil
}

func (uc *GetInsightsUseCase) buildAdvisorRequest(
	now time.Time,
	totals metrics.MonthlyTotals,
	out *GetInsightsOutput,
	drifts []metrics.AllocationDrift,
) *adapter.AdvisorRequest {
	request := &adapter.AdvisorRequest{
		MonthLabel:         now.Format("January 2006"),
		MonthlyIncome:      totals.Income.StringFixed(2),
		MonthlyExpenses:    totals.Expenses.StringFixed(2),
		SavingsRatePercent: metrics.CalculateSavingsRate(totals.Income, totals.Expenses).StringFixed(1),
		ProjectedBalance:   out.ProjectedBalance.StringFixed(2),
		EmergencyFundNote: fmt.Sprintf("%s months covered (%s)",
			out.EmergencyFund.MonthsCovered, out.EmergencyFund.Status),
	}
	for _, a := range out.Anomalies {
		request.AnomalyNotes = append(request.AnomalyNotes,
			fmt.Sprintf("%s changed %s%% month over month", a.Category, a.ChangePercent))
	}
	for _, r := range out.Recurring {
		request.RecurringNotes = append(request.RecurringNotes,
			fmt.Sprintf("%s ~%s %s", r.Merchant, r.AverageAmount.StringFixed(2), r.Frequency))
	}
	for _, d := range drifts {
		direction := "under"
		if d.Over {
			direction = "over"
		}
		request.DriftNotes = append(request.DriftNotes,
			fmt.Sprintf("%s is %s target by %s points", d.Type, direction, d.DriftPoints.Abs()))
	}
	return request
}
