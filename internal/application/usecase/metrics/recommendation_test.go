package metrics

import (
	"strings"
	"testing"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestRecommendAssetBands(t *testing.T) {
	tests := []struct {
		name           string
		currentPrice   string
		wantAction     string
		wantConfidence string
		wantReason     string
	}{
		{"large gain", "125", ActionSell, ConfidenceHigh, "gained 25.00%"},
		{"moderate gain", "115", ActionHold, ConfidenceMedium, "15.00% gains"},
		{"large loss", "80", ActionHold, ConfidenceMedium, "down 20.00%"},
		{"moderate loss", "88", ActionReview, ConfidenceLow, "decline of 12.00%"},
		{"flat", "105", ActionHold, ConfidenceLow, "within normal range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := asset(t, "Blue Chip", entity.AssetTypeEquity, "10", "100", tt.currentPrice)
			rec := RecommendAsset(a)
			if rec.Action != tt.wantAction {
				t.Fatalf("action = %q, want %q", rec.Action, tt.wantAction)
			}
			if rec.Confidence != tt.wantConfidence {
				t.Fatalf("confidence = %q, want %q", rec.Confidence, tt.wantConfidence)
			}
			if !strings.Contains(rec.Reason, tt.wantReason) {
				t.Fatalf("reason %q does not mention %q", rec.Reason, tt.wantReason)
			}
		})
	}
}

func TestRecommendAssetBoundaries(t *testing.T) {
	// Exactly +20% and exactly -10% fall into the milder bands: the rule
	// comparisons are strict.
	gain := RecommendAsset(asset(t, "A", entity.AssetTypeEquity, "1", "100", "120"))
	if gain.Action != ActionHold || gain.Confidence != ConfidenceMedium {
		t.Fatalf("+20%% = %s/%s, want HOLD/Medium", gain.Action, gain.Confidence)
	}
	loss := RecommendAsset(asset(t, "B", entity.AssetTypeEquity, "1", "100", "90"))
	if loss.Action != ActionHold || loss.Confidence != ConfidenceLow {
		t.Fatalf("-10%% = %s/%s, want HOLD/Low", loss.Action, loss.Confidence)
	}
}

func TestRecommendAssets(t *testing.T) {
	assets := []entity.Asset{
		asset(t, "Winner", entity.AssetTypeEquity, "1", "100", "130"),
		asset(t, "Loser", entity.AssetTypeBonds, "1", "100", "70"),
	}
	recs := RecommendAssets(assets)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].AssetName != "Winner" || recs[0].Action != ActionSell {
		t.Fatalf("first rec = %+v, want SELL for Winner", recs[0])
	}
	if recs[1].AssetName != "Loser" || recs[1].Action != ActionHold {
		t.Fatalf("second rec = %+v, want HOLD for Loser", recs[1])
	}
}
