package asset

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteAssetInput represents the input for asset deletion.
type DeleteAssetInput struct {
	ID uuid.UUID
}

// DeleteAssetUseCase handles asset deletion logic.
type DeleteAssetUseCase struct {
	assets adapter.AssetStore
}

// NewDeleteAssetUseCase creates a new DeleteAssetUseCase instance.
func NewDeleteAssetUseCase(assets adapter.AssetStore) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assets: assets}
}

// Execute deletes the asset. Absent ids are a no-op.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, input DeleteAssetInput) error {
	if err := uc.assets.Delete(ctx, input.ID); err != nil {
		return err
	}
	slog.Info("Asset deleted", "asset_id", input.ID)
	return nil
}
