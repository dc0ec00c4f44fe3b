package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// driftThresholdPoints is the absolute deviation (in percentage points) from
// the target allocation above which an asset type is flagged.
const driftThresholdPoints = 5

// targetAllocation is the fixed ideal portfolio split, in percent. Types not
// listed (including "other") have a target of zero.
var targetAllocation = map[entity.AssetType]int64{
	entity.AssetTypeEquity:     50,
	entity.AssetTypeMutualFund: 30,
	entity.AssetTypeBonds:      15,
	entity.AssetTypeETF:        5,
}

// TypeAllocation is one asset type's share of the portfolio.
type TypeAllocation struct {
	Type         entity.AssetType
	Value        decimal.Decimal
	SharePercent decimal.Decimal
}

// PortfolioSummary aggregates the stored asset snapshots.
type PortfolioSummary struct {
	TotalValue      decimal.Decimal
	TotalInvestment decimal.Decimal
	TotalProfitLoss decimal.Decimal
	Allocation      []TypeAllocation
}

// SummarizePortfolio totals the stored snapshot fields and computes each
// asset type's share of total value. It sums what was recorded at entry time;
// it does not revalue anything.
func SummarizePortfolio(assets []entity.Asset) PortfolioSummary {
	summary := PortfolioSummary{
		TotalValue:      decimal.Zero,
		TotalInvestment: decimal.Zero,
		TotalProfitLoss: decimal.Zero,
	}

	byType := make(map[entity.AssetType]decimal.Decimal)
	for _, a := range assets {
		summary.TotalValue = summary.TotalValue.Add(a.CurrentValue)
		summary.TotalInvestment = summary.TotalInvestment.Add(a.InvestmentAmount)
		summary.TotalProfitLoss = summary.TotalProfitLoss.Add(a.ProfitLoss)
		byType[a.Type] = byType[a.Type].Add(a.CurrentValue)
	}

	for assetType, value := range byType {
		share := decimal.Zero
		if summary.TotalValue.IsPositive() {
			share = value.Div(summary.TotalValue).Mul(decimal.NewFromInt(100)).Round(1)
		}
		summary.Allocation = append(summary.Allocation, TypeAllocation{
			Type:         assetType,
			Value:        value,
			SharePercent: share,
		})
	}
	sort.Slice(summary.Allocation, func(i, j int) bool {
		return summary.Allocation[i].Type < summary.Allocation[j].Type
	})
	return summary
}

// AllocationDrift reports an asset type whose current share deviates from its
// target by more than the threshold.
type AllocationDrift struct {
	Type           entity.AssetType
	CurrentPercent decimal.Decimal
	TargetPercent  decimal.Decimal
	DriftPoints    decimal.Decimal
	// Over is true when the type is over-allocated relative to target.
	Over bool
}

// DetectAllocationDrift compares each held asset type's share of total value
// against the fixed target allocation. Only types actually held are checked;
// a missing type cannot drift because nothing is allocated to it.
func DetectAllocationDrift(assets []entity.Asset) []AllocationDrift {
	summary := SummarizePortfolio(assets)

	var drifts []AllocationDrift
	for _, alloc := range summary.Allocation {
		target := decimal.NewFromInt(targetAllocation[alloc.Type])
		drift := alloc.SharePercent.Sub(target)
		if drift.Abs().LessThanOrEqual(decimal.NewFromInt(driftThresholdPoints)) {
			continue
		}
		drifts = append(drifts, AllocationDrift{
			Type:           alloc.Type,
			CurrentPercent: alloc.SharePercent,
			TargetPercent:  target,
			DriftPoints:    drift.Round(1),
			Over:           drift.IsPositive(),
		})
	}
	return drifts
}
