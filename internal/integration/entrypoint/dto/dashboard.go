package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// TypeAllocationResponse represents one asset type's share of the portfolio.
type TypeAllocationResponse struct {
	Type         string          `json:"type"`
	Value        decimal.Decimal `json:"value"`
	SharePercent decimal.Decimal `json:"share_percent"`
}

// DashboardSummaryResponse represents the headline dashboard figures.
type DashboardSummaryResponse struct {
	NetWorth         decimal.Decimal          `json:"net_worth"`
	MonthlyIncome    decimal.Decimal          `json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal          `json:"monthly_expenses"`
	MonthlyBalance   decimal.Decimal          `json:"monthly_balance"`
	SavingsRate      decimal.Decimal          `json:"savings_rate"`
	TotalAssetValue  decimal.Decimal          `json:"total_asset_value"`
	ProjectedBalance decimal.Decimal          `json:"projected_balance"`
	Allocation       []TypeAllocationResponse `json:"allocation"`
}

// ToTypeAllocationResponses converts an allocation slice to its response
// form.
func ToTypeAllocationResponses(allocation []metrics.TypeAllocation) []TypeAllocationResponse {
	responses := make([]TypeAllocationResponse, 0, len(allocation))
	for _, a := range allocation {
		responses = append(responses, TypeAllocationResponse{
			Type:         string(a.Type),
			Value:        a.Value,
			SharePercent: a.SharePercent,
		})
	}
	return responses
}

// ToDashboardSummaryResponse converts the summary output to its response
// form.
func ToDashboardSummaryResponse(out *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		NetWorth:         out.NetWorth,
		MonthlyIncome:    out.MonthlyIncome,
		MonthlyExpenses:  out.MonthlyExpenses,
		MonthlyBalance:   out.MonthlyBalance,
		SavingsRate:      out.SavingsRate,
		TotalAssetValue:  out.TotalAssetValue,
		ProjectedBalance: out.ProjectedBalance,
		Allocation:       ToTypeAllocationResponses(out.Allocation),
	}
}
