package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/infra/kv"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
)

type stores struct {
	transactions adapter.TransactionStore
	categories   adapter.CategoryStore
	mappings     adapter.MappingStore
}

func newStores() stores {
	backend := kv.NewMemoryStore()
	return stores{
		transactions: persistence.NewTransactionStore(backend),
		categories:   persistence.NewCategoryStore(backend),
		mappings:     persistence.NewMappingStore(backend),
	}
}

func createInput(typ entity.TransactionType, amount, merchant string) CreateTransactionInput {
	amt, _ := decimal.NewFromString(amount)
	return CreateTransactionInput{
		Type:     typ,
		Amount:   amt,
		Merchant: merchant,
		Date:     time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransactionAutoCategorizes(t *testing.T) {
	s := newStores()
	uc := NewCreateTransactionUseCase(s.transactions, s.categories, s.mappings)

	out, err := uc.Execute(context.Background(), createInput(entity.TransactionTypeExpense, "500", "Zomato Order #123"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Transaction.Category != "Food" {
		t.Fatalf("category = %q, want Food", out.Transaction.Category)
	}
	if out.Transaction.ID == uuid.Nil {
		t.Fatal("transaction id not assigned")
	}
}

func TestCreateTransactionRejectsInvalidInput(t *testing.T) {
	s := newStores()
	uc := NewCreateTransactionUseCase(s.transactions, s.categories, s.mappings)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, createInput("liability", "100", "Bank")); err == nil {
		t.Fatal("liability type accepted; only income and expense enter the system")
	} else if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.Execute(ctx, createInput(entity.TransactionTypeExpense, "-5", "Zomato")); !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
		t.Fatalf("negative amount error = %v", err)
	}
}

func TestUpdateTransactionLearnsMapping(t *testing.T) {
	s := newStores()
	ctx := context.Background()
	create := NewCreateTransactionUseCase(s.transactions, s.categories, s.mappings)
	update := NewUpdateTransactionUseCase(s.transactions, s.mappings)

	out, err := create.Execute(ctx, createInput(entity.TransactionTypeExpense, "500", "Zomato"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	category := "Dining Out"
	merchant := "Zomato"
	updated, err := update.Execute(ctx, UpdateTransactionInput{
		ID: out.Transaction.ID,
		Patch: adapter.TransactionPatch{
			Category: &category,
			Merchant: &merchant,
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Transaction.Category != "Dining Out" {
		t.Fatalf("category = %q", updated.Transaction.Category)
	}

	// The next transaction for that merchant picks up the learned category,
	// beating the keyword table.
	next, err := create.Execute(ctx, createInput(entity.TransactionTypeExpense, "700", "zomato"))
	if err != nil {
		t.Fatalf("create after learning: %v", err)
	}
	if next.Transaction.Category != "Dining Out" {
		t.Fatalf("learned category not applied: %q", next.Transaction.Category)
	}
}

func TestUpdateTransactionCategoryOnlyDoesNotLearn(t *testing.T) {
	s := newStores()
	ctx := context.Background()
	create := NewCreateTransactionUseCase(s.transactions, s.categories, s.mappings)
	update := NewUpdateTransactionUseCase(s.transactions, s.mappings)

	out, err := create.Execute(ctx, createInput(entity.TransactionTypeExpense, "500", "Zomato"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Learning requires both a category and a merchant in the same patch.
	category := "Dining Out"
	if _, err := update.Execute(ctx, UpdateTransactionInput{
		ID:    out.Transaction.ID,
		Patch: adapter.TransactionPatch{Category: &category},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	learned, err := s.mappings.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(learned) != 0 {
		t.Fatalf("mappings learned without merchant: %v", learned)
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	s := newStores()
	update := NewUpdateTransactionUseCase(s.transactions, s.mappings)

	_, err := update.Execute(context.Background(), UpdateTransactionInput{ID: uuid.New()})
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("error = %v, want transaction not found", err)
	}
}

func TestListTransactionsMonthFilter(t *testing.T) {
	s := newStores()
	ctx := context.Background()
	create := NewCreateTransactionUseCase(s.transactions, s.categories, s.mappings)
	list := NewListTransactionsUseCase(s.transactions)

	march := createInput(entity.TransactionTypeExpense, "100", "Zomato")
	april := createInput(entity.TransactionTypeExpense, "200", "Uber")
	april.Date = time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)
	if _, err := create.Execute(ctx, march); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(ctx, april); err != nil {
		t.Fatalf("create: %v", err)
	}

	month := time.March
	year := 2024
	out, err := list.Execute(ctx, ListTransactionsInput{Month: &month, Year: &year})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Transactions) != 1 || out.Transactions[0].Merchant != "Zomato" {
		t.Fatalf("filtered = %+v", out.Transactions)
	}

	all, err := list.Execute(ctx, ListTransactionsInput{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all.Transactions) != 2 {
		t.Fatalf("unfiltered = %d items", len(all.Transactions))
	}
}

func TestDeleteTransactionIdempotent(t *testing.T) {
	s := newStores()
	ctx := context.Background()
	create := NewCreateTransactionUseCase(s.transactions, s.categories, s.mappings)
	del := NewDeleteTransactionUseCase(s.transactions)

	out, err := create.Execute(ctx, createInput(entity.TransactionTypeExpense, "100", "Zomato"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := del.Execute(ctx, DeleteTransactionInput{ID: out.Transaction.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := del.Execute(ctx, DeleteTransactionInput{ID: out.Transaction.ID}); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
