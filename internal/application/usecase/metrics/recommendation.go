package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Recommendation actions and confidence labels.
const (
	ActionSell   = "SELL"
	ActionHold   = "HOLD"
	ActionReview = "REVIEW"

	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// AssetRecommendation is a rule-based hold/sell/review call on a single
// holding, derived from its stored profit/loss percentage.
type AssetRecommendation struct {
	AssetID    string
	AssetName  string
	Action     string
	Reason     string
	Confidence string
}

// RecommendAsset bands the asset's stored profit/loss percent into an action.
// Bands are checked from the largest gain down; the middle band is a plain
// hold.
func RecommendAsset(asset entity.Asset) AssetRecommendation {
	rec := AssetRecommendation{
		AssetID:   asset.ID.String(),
		AssetName: asset.Name,
	}

	pct := asset.ProfitLossPercent
	switch {
	case pct.GreaterThan(decimal.NewFromInt(20)):
		rec.Action = ActionSell
		rec.Confidence = ConfidenceHigh
		rec.Reason = fmt.Sprintf("This asset has gained %s%%. Consider taking partial profits to lock in gains.", pct.StringFixed(2))
	case pct.GreaterThan(decimal.NewFromInt(10)):
		rec.Action = ActionHold
		rec.Confidence = ConfidenceMedium
		rec.Reason = fmt.Sprintf("Strong performance with %s%% gains. Continue monitoring for profit-taking opportunities.", pct.StringFixed(2))
	case pct.LessThan(decimal.NewFromInt(-15)):
		rec.Action = ActionHold
		rec.Confidence = ConfidenceMedium
		rec.Reason = fmt.Sprintf("Asset is down %s%%. Avoid panic selling. Consider if fundamentals are still intact.", pct.Abs().StringFixed(2))
	case pct.LessThan(decimal.NewFromInt(-10)):
		rec.Action = ActionReview
		rec.Confidence = ConfidenceLow
		rec.Reason = fmt.Sprintf("Moderate decline of %s%%. Review your investment thesis and market conditions.", pct.Abs().StringFixed(2))
	default:
		rec.Action = ActionHold
		rec.Confidence = ConfidenceLow
		rec.Reason = "Performance is within normal range. Continue holding based on your investment strategy."
	}

	return rec
}

// RecommendAssets runs the rule bands over every holding.
func RecommendAssets(assets []entity.Asset) []AssetRecommendation {
	recommendations := make([]AssetRecommendation, 0, len(assets))
	for _, a := range assets {
		recommendations = append(recommendations, RecommendAsset(a))
	}
	return recommendations
}
