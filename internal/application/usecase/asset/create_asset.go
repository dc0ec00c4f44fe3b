// Package asset contains asset-related use cases.
package asset

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateAssetInput represents the input for asset creation.
type CreateAssetInput struct {
	Name            string
	Type            entity.AssetType
	Quantity        decimal.Decimal
	PurchasePrice   decimal.Decimal
	CurrentPrice    decimal.Decimal
	Broker          string
	BrokerAccountID string
}

// CreateAssetOutput represents the output of asset creation.
type CreateAssetOutput struct {
	Asset *entity.Asset
}

// CreateAssetUseCase handles asset creation logic.
type CreateAssetUseCase struct {
	assets adapter.AssetStore
}

// NewCreateAssetUseCase creates a new CreateAssetUseCase instance.
func NewCreateAssetUseCase(assets adapter.AssetStore) *CreateAssetUseCase {
	return &CreateAssetUseCase{assets: assets}
}

// Execute creates the asset. The derived value/profit fields are computed
// here, once, and stored; they are not recomputed on later reads.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, input CreateAssetInput) (*CreateAssetOutput, error) {
	if !isValidAssetType(input.Type) {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetType,
			"asset type must be one of equity, mutual_fund, bonds, etf, other",
			domainerror.ErrInvalidAssetType,
		)
	}
	if input.Quantity.IsNegative() || input.PurchasePrice.IsNegative() || input.CurrentPrice.IsNegative() {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetAmount,
			"quantity and prices must not be negative",
			domainerror.ErrInvalidAssetAmount,
		)
	}

	created := entity.NewAsset(
		input.Name,
		input.Type,
		input.Quantity,
		input.PurchasePrice,
		input.CurrentPrice,
		input.Broker,
		input.BrokerAccountID,
	)
	if err := uc.assets.Add(ctx, created); err != nil {
		return nil, err
	}

	slog.Info("Asset created",
		"asset_id", created.ID,
		"type", created.Type,
		"current_value", created.CurrentValue,
	)

	return &CreateAssetOutput{Asset: created}, nil
}

func isValidAssetType(t entity.AssetType) bool {
	switch t {
	case entity.AssetTypeEquity, entity.AssetTypeMutualFund, entity.AssetTypeBonds, entity.AssetTypeETF, entity.AssetTypeOther:
		return true
	}
	return false
}
