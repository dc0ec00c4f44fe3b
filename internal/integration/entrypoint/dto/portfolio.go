package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// PortfolioSummaryResponse represents the aggregated portfolio totals.
type PortfolioSummaryResponse struct {
	TotalValue      decimal.Decimal          `json:"total_value"`
	TotalInvestment decimal.Decimal          `json:"total_investment"`
	TotalProfitLoss decimal.Decimal          `json:"total_profit_loss"`
	Allocation      []TypeAllocationResponse `json:"allocation"`
}

// AllocationDriftResponse represents one asset type's drift from its target
// allocation.
type AllocationDriftResponse struct {
	Type           string          `json:"type"`
	CurrentPercent decimal.Decimal `json:"current_percent"`
	TargetPercent  decimal.Decimal `json:"target_percent"`
	DriftPoints    decimal.Decimal `json:"drift_points"`
	Over           bool            `json:"over"`
}

// DriftResponse represents the allocation drift report.
type DriftResponse struct {
	Drift []AllocationDriftResponse `json:"drift"`
}

// AssetRecommendationResponse represents one per-asset recommendation.
type AssetRecommendationResponse struct {
	AssetID    string `json:"asset_id"`
	AssetName  string `json:"asset_name"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
	Confidence string `json:"confidence"`
}

// RecommendationsResponse represents the per-asset recommendation list.
type RecommendationsResponse struct {
	Recommendations []AssetRecommendationResponse `json:"recommendations"`
}

// ToPortfolioSummaryResponse converts the portfolio summary to its response
// form.
func ToPortfolioSummaryResponse(summary metrics.PortfolioSummary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		TotalValue:      summary.TotalValue,
		TotalInvestment: summary.TotalInvestment,
		TotalProfitLoss: summary.TotalProfitLoss,
		Allocation:      ToTypeAllocationResponses(summary.Allocation),
	}
}

// ToDriftResponse converts allocation drifts to their response form.
func ToDriftResponse(drift []metrics.AllocationDrift) DriftResponse {
	responses := make([]AllocationDriftResponse, 0, len(drift))
	for _, d := range drift {
		responses = append(responses, AllocationDriftResponse{
			Type:           string(d.Type),
			CurrentPercent: d.CurrentPercent,
			TargetPercent:  d.TargetPercent,
			DriftPoints:    d.DriftPoints,
			Over:           d.Over,
		})
	}
	return DriftResponse{Drift: responses}
}

// ToRecommendationsResponse converts asset recommendations to their response
// form.
func ToRecommendationsResponse(recommendations []metrics.AssetRecommendation) RecommendationsResponse {
	responses := make([]AssetRecommendationResponse, 0, len(recommendations))
	for _, r := range recommendations {
		responses = append(responses, AssetRecommendationResponse{
			AssetID:    r.AssetID,
			AssetName:  r.AssetName,
			Action:     r.Action,
			Reason:     r.Reason,
			Confidence: r.Confidence,
		})
	}
	return RecommendationsResponse{Recommendations: responses}
}
