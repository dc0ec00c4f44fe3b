package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/infra/kv"
)

func newTransaction(t *testing.T, merchant, amount string) *entity.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad amount %q: %v", amount, err)
	}
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	return entity.NewTransaction(entity.TransactionTypeExpense, amt, merchant, "Food", date, "")
}

func TestTransactionStorePrependAndRehydrate(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	store := NewTransactionStore(backend)

	first := newTransaction(t, "Zomato", "500")
	second := newTransaction(t, "Uber", "300")
	if err := store.Add(ctx, first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(ctx, second); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].Merchant != "Uber" || items[1].Merchant != "Zomato" {
		t.Fatalf("unexpected order: %+v", items)
	}

	// A fresh store over the same backend sees the persisted collection.
	rehydrated, err := NewTransactionStore(backend).List(ctx)
	if err != nil {
		t.Fatalf("List after rehydrate: %v", err)
	}
	if len(rehydrated) != 2 || rehydrated[0].ID != second.ID {
		t.Fatalf("rehydrated collection differs: %+v", rehydrated)
	}
}

func TestTransactionStoreUpdateMergesPatch(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(kv.NewMemoryStore())

	tr := newTransaction(t, "Zomato", "500")
	if err := store.Add(ctx, tr); err != nil {
		t.Fatalf("Add: %v", err)
	}

	category := "Dining Out"
	amount := decimal.NewFromInt(650)
	updated, found, err := store.Update(ctx, tr.ID, adapter.TransactionPatch{
		Category: &category,
		Amount:   &amount,
	})
	if err != nil || !found {
		t.Fatalf("Update = found=%v err=%v", found, err)
	}
	if updated.Category != "Dining Out" || !updated.Amount.Equal(amount) {
		t.Fatalf("patched fields not applied: %+v", updated)
	}
	// Untouched fields survive the merge.
	if updated.Merchant != "Zomato" || updated.Type != entity.TransactionTypeExpense {
		t.Fatalf("unpatched fields changed: %+v", updated)
	}
}

func TestTransactionStoreAbsentIDNoOps(t *testing.T) {
	ctx := context.Background()
	store := NewTransactionStore(kv.NewMemoryStore())
	if err := store.Add(ctx, newTransaction(t, "Zomato", "500")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, found, err := store.Update(ctx, uuid.New(), adapter.TransactionPatch{}); err != nil || found {
		t.Fatalf("Update absent = found=%v err=%v, want no-op", found, err)
	}
	if err := store.Delete(ctx, uuid.New()); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
	items, _ := store.List(ctx)
	if len(items) != 1 {
		t.Fatalf("collection changed by no-ops: %+v", items)
	}
}

func TestTransactionStoreRecoversFromMalformedDocument(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	if err := backend.Set(ctx, "transactions", "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	store := NewTransactionStore(backend)
	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List over corrupt document: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("corrupt document produced %d items", len(items))
	}

	// The store stays writable after discarding the corrupt document.
	if err := store.Add(ctx, newTransaction(t, "Zomato", "100")); err != nil {
		t.Fatalf("Add after recovery: %v", err)
	}
}

func TestAssetStoreReplace(t *testing.T) {
	ctx := context.Background()
	store := NewAssetStore(kv.NewMemoryStore())

	a := entity.NewAsset("Blue Chip", entity.AssetTypeEquity,
		decimal.NewFromInt(10), decimal.NewFromInt(100), decimal.NewFromInt(120), "", "")
	if err := store.Add(ctx, a); err != nil {
		t.Fatalf("Add: %v", err)
	}

	a.CurrentPrice = decimal.NewFromInt(150)
	a.RecomputeSnapshot()
	found, err := store.Replace(ctx, a)
	if err != nil || !found {
		t.Fatalf("Replace = found=%v err=%v", found, err)
	}

	stored, found, err := store.Get(ctx, a.ID)
	if err != nil || !found {
		t.Fatalf("Get = found=%v err=%v", found, err)
	}
	if !stored.CurrentValue.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("snapshot not replaced: %+v", stored)
	}

	other := entity.NewAsset("Ghost", entity.AssetTypeETF,
		decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.NewFromInt(1), "", "")
	if found, err := store.Replace(ctx, other); err != nil || found {
		t.Fatalf("Replace absent = found=%v err=%v, want no-op", found, err)
	}
}

func TestCategoryStoreSeedsDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()

	first, err := NewCategoryStore(backend).List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) != 8 || first[0].Name != "Food" {
		t.Fatalf("unexpected seed set: %+v", first)
	}

	// The seeded ids persist: a new store over the same backend returns the
	// same categories rather than reseeding.
	second, err := NewCategoryStore(backend).List(ctx)
	if err != nil {
		t.Fatalf("List rehydrated: %v", err)
	}
	if first[0].ID != second[0].ID {
		t.Fatal("seed ids changed across rehydration")
	}
}

func TestMappingStoreLearnsAndOverwrites(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	store := NewMappingStore(backend)

	if err := store.Learn(ctx, "zomato", "Dining Out"); err != nil {
		t.Fatalf("Learn: %v", err)
	}
	if err := store.Learn(ctx, "zomato", "Food"); err != nil {
		t.Fatalf("Learn overwrite: %v", err)
	}

	all, err := NewMappingStore(backend).All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if all["zomato"] != "Food" {
		t.Fatalf("mapping = %q, want latest value", all["zomato"])
	}
}

func TestPreferenceStoreDefaults(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	store := NewPreferenceStore(backend)

	prefs, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if prefs != entity.DefaultPreferences() {
		t.Fatalf("empty store prefs = %+v", prefs)
	}

	prefs.DarkMode = true
	prefs.FontSize = 18
	if err := store.Set(ctx, prefs); err != nil {
		t.Fatalf("Set: %v", err)
	}
	stored, err := NewPreferenceStore(backend).Get(ctx)
	if err != nil {
		t.Fatalf("Get rehydrated: %v", err)
	}
	if stored != prefs {
		t.Fatalf("stored prefs = %+v, want %+v", stored, prefs)
	}
}
