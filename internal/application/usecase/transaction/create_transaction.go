// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/categorizer"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Merchant    string
	Date        time.Time
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactions adapter.TransactionStore
	categories   adapter.CategoryStore
	mappings     adapter.MappingStore
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactions adapter.TransactionStore,
	categories adapter.CategoryStore,
	mappings adapter.MappingStore,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactions: transactions,
		categories:   categories,
		mappings:     mappings,
	}
}

// Execute creates the transaction. The category is always assigned by the
// auto-categorizer from the merchant text; corrections happen through the
// update path, which is also where learning occurs.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	learned, err := uc.mappings.All(ctx)
	if err != nil {
		return nil, err
	}
	category := categorizer.Categorize(input.Merchant, categories, learned)

	created := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.Merchant,
		category.Name,
		input.Date,
		input.Description,
	)
	if err := uc.transactions.Add(ctx, created); err != nil {
		return nil, err
	}

	slog.Info("Transaction created",
		"transaction_id", created.ID,
		"type", created.Type,
		"category", created.Category,
	)

	return &CreateTransactionOutput{Transaction: created}, nil
}

func isValidTransactionType(t entity.TransactionType) bool {
	return t == entity.TransactionTypeIncome || t == entity.TransactionTypeExpense
}
