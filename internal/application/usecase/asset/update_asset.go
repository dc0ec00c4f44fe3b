package asset

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// UpdateAssetInput represents the partial update of an asset. Nil fields are
// left untouched.
type UpdateAssetInput struct {
	ID              uuid.UUID
	Name            *string
	Type            *entity.AssetType
	Quantity        *decimal.Decimal
	PurchasePrice   *decimal.Decimal
	CurrentPrice    *decimal.Decimal
	Broker          *string
	BrokerAccountID *string
}

// UpdateAssetOutput represents the output of an asset update.
type UpdateAssetOutput struct {
	Asset *entity.Asset
}

// UpdateAssetUseCase handles asset update logic.
type UpdateAssetUseCase struct {
	assets adapter.AssetStore
}

// NewUpdateAssetUseCase creates a new UpdateAssetUseCase instance.
func NewUpdateAssetUseCase(assets adapter.AssetStore) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{assets: assets}
}

// Execute merges the provided fields and recomputes the stored snapshot.
// An update is the only point after creation where the derived fields are
// refreshed.
func (uc *UpdateAssetUseCase) Execute(ctx context.Context, input UpdateAssetInput) (*UpdateAssetOutput, error) {
	if input.Type != nil && !isValidAssetType(*input.Type) {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeInvalidAssetType,
			"asset type must be one of equity, mutual_fund, bonds, etf, other",
			domainerror.ErrInvalidAssetType,
		)
	}
	for _, d := range []*decimal.Decimal{input.Quantity, input.PurchasePrice, input.CurrentPrice} {
		if d != nil && d.IsNegative() {
			return nil, domainerror.NewAssetError(
				domainerror.ErrCodeInvalidAssetAmount,
				"quantity and prices must not be negative",
				domainerror.ErrInvalidAssetAmount,
			)
		}
	}

	stored, found, err := uc.assets.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerror.NewAssetError(
			domainerror.ErrCodeAssetNotFound,
			"asset not found",
			domainerror.ErrAssetNotFound,
		)
	}

	if input.Name != nil {
		stored.Name = *input.Name
	}
	if input.Type != nil {
		stored.Type = *input.Type
	}
	if input.Quantity != nil {
		stored.Quantity = *input.Quantity
	}
	if input.PurchasePrice != nil {
		stored.PurchasePrice = *input.PurchasePrice
	}
	if input.CurrentPrice != nil {
		stored.CurrentPrice = *input.CurrentPrice
	}
	if input.Broker != nil {
		stored.Broker = *input.Broker
	}
	if input.BrokerAccountID != nil {
		stored.BrokerAccountID = *input.BrokerAccountID
	}
	stored.RecomputeSnapshot()
	stored.UpdatedAt = time.Now().UTC()

	if _, err := uc.assets.Replace(ctx, stored); err != nil {
		return nil, err
	}

	slog.Info("Asset updated", "asset_id", stored.ID)
	return &UpdateAssetOutput{Asset: stored}, nil
}
