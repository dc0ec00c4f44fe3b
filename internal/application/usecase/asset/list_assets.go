package asset

import (
	"context"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListAssetsOutput represents the output of asset listing.
type ListAssetsOutput struct {
	Assets []entity.Asset
}

// ListAssetsUseCase handles asset listing logic.
type ListAssetsUseCase struct {
	assets adapter.AssetStore
}

// NewListAssetsUseCase creates a new ListAssetsUseCase instance.
func NewListAssetsUseCase(assets adapter.AssetStore) *ListAssetsUseCase {
	return &ListAssetsUseCase{assets: assets}
}

// Execute lists all assets in insertion order.
func (uc *ListAssetsUseCase) Execute(ctx context.Context) (*ListAssetsOutput, error) {
	items, err := uc.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListAssetsOutput{Assets: items}, nil
}
