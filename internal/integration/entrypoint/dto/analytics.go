package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// CategoryTotalResponse represents one category's expense total.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BreakdownResponse represents the per-category expense breakdown for a
// month.
type BreakdownResponse struct {
	Breakdown []CategoryTotalResponse `json:"breakdown"`
}

// MonthPointResponse represents one month in a comparison series.
type MonthPointResponse struct {
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// ComparisonResponse represents the six-month income/expense series, oldest
// first.
type ComparisonResponse struct {
	Months []MonthPointResponse `json:"months"`
}

// DayFlowResponse represents one day in the cash-flow heatmap.
type DayFlowResponse struct {
	Day      int             `json:"day"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// HeatmapResponse represents the per-day cash-flow for a month.
type HeatmapResponse struct {
	Days []DayFlowResponse `json:"days"`
}

// NeedsWantsResponse represents the needs/wants/other expense split.
type NeedsWantsResponse struct {
	Needs decimal.Decimal `json:"needs"`
	Wants decimal.Decimal `json:"wants"`
	Other decimal.Decimal `json:"other"`
}

// InflationResponse represents the lifestyle inflation trend.
type InflationResponse struct {
	Series        []MonthPointResponse `json:"series"`
	ChangePercent decimal.Decimal      `json:"change_percent"`
}

// ToBreakdownResponse converts category totals to their response form.
func ToBreakdownResponse(breakdown []metrics.CategoryTotal) BreakdownResponse {
	responses := make([]CategoryTotalResponse, 0, len(breakdown))
	for _, b := range breakdown {
		responses = append(responses, CategoryTotalResponse{Category: b.Category, Amount: b.Amount})
	}
	return BreakdownResponse{Breakdown: responses}
}

// ToMonthPointResponses converts a month series to its response form.
func ToMonthPointResponses(series []metrics.MonthPoint) []MonthPointResponse {
	responses := make([]MonthPointResponse, 0, len(series))
	for _, p := range series {
		responses = append(responses, MonthPointResponse{
			Month:    int(p.Month),
			Year:     p.Year,
			Income:   p.Income,
			Expenses: p.Expenses,
			Net:      p.Net,
		})
	}
	return responses
}

// ToHeatmapResponse converts day flows to their response form.
func ToHeatmapResponse(days []metrics.DayFlow) HeatmapResponse {
	responses := make([]DayFlowResponse, 0, len(days))
	for _, d := range days {
		responses = append(responses, DayFlowResponse{Day: d.Day, Income: d.Income, Expenses: d.Expenses})
	}
	return HeatmapResponse{Days: responses}
}

// ToNeedsWantsResponse converts the split to its response form.
func ToNeedsWantsResponse(split metrics.NeedsWantsSplit) NeedsWantsResponse {
	return NeedsWantsResponse{Needs: split.Needs, Wants: split.Wants, Other: split.Other}
}

// ToInflationResponse converts the inflation trend to its response form.
func ToInflationResponse(inflation metrics.LifestyleInflation) InflationResponse {
	return InflationResponse{
		Series:        ToMonthPointResponses(inflation.Series),
		ChangePercent: inflation.ChangePercent,
	}
}
