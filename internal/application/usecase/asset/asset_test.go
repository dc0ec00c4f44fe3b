package asset

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/infra/kv"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
)

func newStore() adapter.AssetStore {
	return persistence.NewAssetStore(kv.NewMemoryStore())
}

func createInput(name string, quantity, purchase, current string) CreateAssetInput {
	q, _ := decimal.NewFromString(quantity)
	pp, _ := decimal.NewFromString(purchase)
	cp, _ := decimal.NewFromString(current)
	return CreateAssetInput{
		Name:          name,
		Type:          entity.AssetTypeEquity,
		Quantity:      q,
		PurchasePrice: pp,
		CurrentPrice:  cp,
	}
}

func TestCreateAssetComputesSnapshot(t *testing.T) {
	store := newStore()
	uc := NewCreateAssetUseCase(store)

	out, err := uc.Execute(context.Background(), createInput("Blue Chip", "10", "100", "120"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	a := out.Asset
	if !a.CurrentValue.Equal(decimal.NewFromInt(1200)) {
		t.Fatalf("current value = %s", a.CurrentValue)
	}
	if !a.InvestmentAmount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("investment = %s", a.InvestmentAmount)
	}
	if !a.ProfitLoss.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("profit/loss = %s", a.ProfitLoss)
	}
	if !a.ProfitLossPercent.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("profit/loss percent = %s", a.ProfitLossPercent)
	}
}

func TestCreateAssetZeroInvestment(t *testing.T) {
	store := newStore()
	uc := NewCreateAssetUseCase(store)

	out, err := uc.Execute(context.Background(), createInput("Free Shares", "10", "0", "50"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !out.Asset.ProfitLossPercent.IsZero() {
		t.Fatalf("profit percent with zero investment = %s, want 0", out.Asset.ProfitLossPercent)
	}
}

func TestCreateAssetRejectsInvalidInput(t *testing.T) {
	store := newStore()
	uc := NewCreateAssetUseCase(store)
	ctx := context.Background()

	bad := createInput("Blue Chip", "10", "100", "120")
	bad.Type = "crypto"
	if _, err := uc.Execute(ctx, bad); !errors.Is(err, domainerror.ErrInvalidAssetType) {
		t.Fatalf("invalid type error = %v", err)
	}

	if _, err := uc.Execute(ctx, createInput("Blue Chip", "-1", "100", "120")); !errors.Is(err, domainerror.ErrInvalidAssetAmount) {
		t.Fatalf("negative quantity error = %v", err)
	}
}

func TestUpdateAssetRecomputesSnapshot(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	create := NewCreateAssetUseCase(store)
	update := NewUpdateAssetUseCase(store)

	out, err := create.Execute(ctx, createInput("Blue Chip", "10", "100", "120"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := decimal.NewFromInt(150)
	updated, err := update.Execute(ctx, UpdateAssetInput{
		ID:           out.Asset.ID,
		CurrentPrice: &price,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Asset.CurrentValue.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("current value after update = %s", updated.Asset.CurrentValue)
	}
	if !updated.Asset.ProfitLossPercent.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("profit percent after update = %s", updated.Asset.ProfitLossPercent)
	}
	// The untouched purchase side survives the merge.
	if !updated.Asset.InvestmentAmount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("investment after update = %s", updated.Asset.InvestmentAmount)
	}
}

func TestListAndDeleteAssets(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	create := NewCreateAssetUseCase(store)
	list := NewListAssetsUseCase(store)
	del := NewDeleteAssetUseCase(store)

	first, err := create.Execute(ctx, createInput("One", "1", "10", "10"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(ctx, createInput("Two", "2", "20", "20")); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := list.Execute(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Assets) != 2 || out.Assets[0].Name != "One" {
		t.Fatalf("list = %+v", out.Assets)
	}

	if err := del.Execute(ctx, DeleteAssetInput{ID: first.Asset.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, _ = list.Execute(ctx)
	if len(out.Assets) != 1 || out.Assets[0].Name != "Two" {
		t.Fatalf("list after delete = %+v", out.Assets)
	}
}
