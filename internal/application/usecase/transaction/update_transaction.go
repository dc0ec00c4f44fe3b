package transaction

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// UpdateTransactionInput represents the partial update of a transaction.
// Nil fields are left untouched.
type UpdateTransactionInput struct {
	ID    uuid.UUID
	Patch adapter.TransactionPatch
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic, including the
// categorizer's learning side effect.
type UpdateTransactionUseCase struct {
	transactions adapter.TransactionStore
	mappings     adapter.MappingStore
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactions adapter.TransactionStore,
	mappings adapter.MappingStore,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactions: transactions,
		mappings:     mappings,
	}
}

// Execute merges the patch into the stored transaction. When the patch
// carries both a category and a merchant, the pair is learned so future
// transactions with that merchant auto-assign the corrected category. The
// mapping is written unconditionally, overwriting any prior entry.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	patch := input.Patch

	if patch.Type != nil && !isValidTransactionType(*patch.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	updated, found, err := uc.transactions.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if patch.Category != nil && patch.Merchant != nil {
		merchant := strings.ToLower(*patch.Merchant)
		if err := uc.mappings.Learn(ctx, merchant, *patch.Category); err != nil {
			return nil, err
		}
		slog.Info("Learned merchant mapping",
			"merchant", merchant,
			"category", *patch.Category,
		)
	}

	return &UpdateTransactionOutput{Transaction: updated}, nil
}
