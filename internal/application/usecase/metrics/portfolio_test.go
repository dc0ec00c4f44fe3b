package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestSummarizePortfolio(t *testing.T) {
	assets := []entity.Asset{
		// 10 × 2000 = 20000 invested, 10 × 2500 = 25000 current.
		asset(t, "Nifty Fund", entity.AssetTypeMutualFund, "10", "2000", "2500"),
		// 50 × 90 = 4500 invested, 50 × 100 = 5000 current.
		asset(t, "Blue Chip", entity.AssetTypeEquity, "50", "90", "100"),
	}

	summary := SummarizePortfolio(assets)
	if want := decimal.NewFromInt(30000); !summary.TotalValue.Equal(want) {
		t.Fatalf("total value = %s, want %s", summary.TotalValue, want)
	}
	if want := decimal.NewFromInt(24500); !summary.TotalInvestment.Equal(want) {
		t.Fatalf("total investment = %s, want %s", summary.TotalInvestment, want)
	}
	if want := decimal.NewFromInt(5500); !summary.TotalProfitLoss.Equal(want) {
		t.Fatalf("total profit/loss = %s, want %s", summary.TotalProfitLoss, want)
	}

	if len(summary.Allocation) != 2 {
		t.Fatalf("allocation has %d entries, want 2", len(summary.Allocation))
	}
	// Sorted by type: equity before mutual_fund.
	if summary.Allocation[0].Type != entity.AssetTypeEquity {
		t.Fatalf("first allocation = %s, want equity", summary.Allocation[0].Type)
	}
	if want := decimal.RequireFromString("16.7"); !summary.Allocation[0].SharePercent.Equal(want) {
		t.Fatalf("equity share = %s, want %s", summary.Allocation[0].SharePercent, want)
	}
	if want := decimal.RequireFromString("83.3"); !summary.Allocation[1].SharePercent.Equal(want) {
		t.Fatalf("mutual fund share = %s, want %s", summary.Allocation[1].SharePercent, want)
	}
}

func TestSummarizePortfolioEmpty(t *testing.T) {
	summary := SummarizePortfolio(nil)
	if !summary.TotalValue.IsZero() || !summary.TotalInvestment.IsZero() || !summary.TotalProfitLoss.IsZero() {
		t.Fatalf("empty portfolio totals not zero: %+v", summary)
	}
	if len(summary.Allocation) != 0 {
		t.Fatalf("empty portfolio has %d allocations", len(summary.Allocation))
	}
}

func TestDetectAllocationDrift(t *testing.T) {
	// Everything in equity: 100% vs 50% target, 50 points over.
	assets := []entity.Asset{
		asset(t, "Blue Chip", entity.AssetTypeEquity, "10", "100", "100"),
	}

	drifts := DetectAllocationDrift(assets)
	if len(drifts) != 1 {
		t.Fatalf("got %d drifts, want 1", len(drifts))
	}
	d := drifts[0]
	if d.Type != entity.AssetTypeEquity {
		t.Fatalf("drift type = %s, want equity", d.Type)
	}
	if want := decimal.NewFromInt(50); !d.DriftPoints.Equal(want) {
		t.Fatalf("drift points = %s, want %s", d.DriftPoints, want)
	}
	if !d.Over {
		t.Fatal("drift should be over-allocated")
	}
}

func TestDetectAllocationDriftWithinThreshold(t *testing.T) {
	// 50/30/15/5 split matches the target exactly; nothing drifts.
	assets := []entity.Asset{
		asset(t, "Equity", entity.AssetTypeEquity, "50", "1", "1"),
		asset(t, "MF", entity.AssetTypeMutualFund, "30", "1", "1"),
		asset(t, "Bonds", entity.AssetTypeBonds, "15", "1", "1"),
		asset(t, "ETF", entity.AssetTypeETF, "5", "1", "1"),
	}
	if drifts := DetectAllocationDrift(assets); len(drifts) != 0 {
		t.Fatalf("got %d drifts, want 0: %+v", len(drifts), drifts)
	}
}

func TestDetectAllocationDriftSkipsUnheldTypes(t *testing.T) {
	// Holding only bonds: bonds drift is reported, but the missing equity,
	// mutual fund and ETF targets do not generate entries.
	assets := []entity.Asset{
		asset(t, "Gilt Fund", entity.AssetTypeBonds, "100", "10", "10"),
	}
	drifts := DetectAllocationDrift(assets)
	if len(drifts) != 1 {
		t.Fatalf("got %d drifts, want 1", len(drifts))
	}
	if drifts[0].Type != entity.AssetTypeBonds {
		t.Fatalf("drift type = %s, want bonds", drifts[0].Type)
	}
}
