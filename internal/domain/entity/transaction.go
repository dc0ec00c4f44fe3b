// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"

	// TransactionTypeLiability is recognized by net-worth calculations but is
	// never produced by any entry path. Imported data that carries it must keep
	// working.
	TransactionTypeLiability TransactionType = "liability"
)

// Transaction represents a single manually entered financial transaction.
// Entities are serialized as-is into the key-value store, hence the JSON tags.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Merchant    string          `json:"merchant"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	merchant string,
	category string,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		Type:        transactionType,
		Amount:      amount,
		Merchant:    merchant,
		Category:    category,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// InMonth reports whether the transaction's calendar date falls in the given
// month and year. Month/year extraction, not a rolling window.
func (t *Transaction) InMonth(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}
