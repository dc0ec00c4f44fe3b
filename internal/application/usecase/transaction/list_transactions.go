package transaction

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListTransactionsInput represents the optional month filter. Both fields
// must be set together for the filter to apply.
type ListTransactionsInput struct {
	Month *time.Month
	Year  *int
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []entity.Transaction
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactions adapter.TransactionStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactions adapter.TransactionStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactions: transactions}
}

// Execute lists transactions newest first, optionally filtered to one
// calendar month.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	items, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	if input.Month == nil || input.Year == nil {
		return &ListTransactionsOutput{Transactions: items}, nil
	}

	filtered := make([]entity.Transaction, 0, len(items))
	for _, t := range items {
		if t.InMonth(*input.Month, *input.Year) {
			filtered = append(filtered, t)
		}
	}
	return &ListTransactionsOutput{Transactions: filtered}, nil
}
