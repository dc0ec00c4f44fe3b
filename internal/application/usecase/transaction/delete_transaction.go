package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactions adapter.TransactionStore
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactions adapter.TransactionStore) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactions: transactions}
}

// Execute deletes the transaction. Deleting an absent id is a no-op, not an
// error: the end state is the same either way.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.transactions.Delete(ctx, input.ID); err != nil {
		return err
	}
	slog.Info("Transaction deleted", "transaction_id", input.ID)
	return nil
}
