// Package portfolio contains the investment-view use cases built on the
// stored asset snapshots.
package portfolio

import (
	"context"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
)

// PortfolioUseCase serves the portfolio views from the asset collection.
type PortfolioUseCase struct {
	assets adapter.AssetStore
}

// NewPortfolioUseCase creates a new PortfolioUseCase instance.
func NewPortfolioUseCase(assets adapter.AssetStore) *PortfolioUseCase {
	return &PortfolioUseCase{assets: assets}
}

// GetSummary totals the stored snapshots and the per-type allocation.
func (uc *PortfolioUseCase) GetSummary(ctx context.Context) (metrics.PortfolioSummary, error) {
	assets, err := uc.assets.List(ctx)
	if err != nil {
		return metrics.PortfolioSummary{}, err
	}
	return metrics.SummarizePortfolio(assets), nil
}

// GetDrift reports asset types deviating from the target allocation.
func (uc *PortfolioUseCase) GetDrift(ctx context.Context) ([]metrics.AllocationDrift, error) {
	assets, err := uc.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.DetectAllocationDrift(assets), nil
}

// GetRecommendations runs the rule bands over every holding.
func (uc *PortfolioUseCase) GetRecommendations(ctx context.Context) ([]metrics.AssetRecommendation, error) {
	assets, err := uc.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.RecommendAssets(assets), nil
}
