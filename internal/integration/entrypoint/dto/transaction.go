package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// TransactionDateLayout is the wire format for transaction dates.
const TransactionDateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for creating a
// transaction. Category is intentionally absent: it is always assigned by the
// auto-categorizer and corrected through the update path.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Merchant    string          `json:"merchant" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description"`
}

// UpdateTransactionRequest represents the partial-update request body. Absent
// fields are left untouched.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Merchant    *string          `json:"merchant,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Merchant    string          `json:"merchant"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListTransactionsResponse represents the response for listing transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a Transaction entity to its response form.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Merchant:    t.Merchant,
		Category:    t.Category,
		Date:        t.Date.Format(TransactionDateLayout),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToListTransactionsResponse converts a transaction slice to its response
// form.
func ToListTransactionsResponse(transactions []entity.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, ToTransactionResponse(&transactions[i]))
	}
	return ListTransactionsResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
