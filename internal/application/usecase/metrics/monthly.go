// Package metrics implements the derived-metrics engine: pure, stateless
// functions over snapshots of the record collections. Everything here is
// recomputed from scratch on every read; at dashboard scale (hundreds of
// records) caching would be machinery without a payoff.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// MonthlyTotals holds the aggregated income and expenses of one calendar month.
type MonthlyTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Balance returns income minus expenses.
func (m MonthlyTotals) Balance() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// CalculateMonthlyTotals sums income- and expense-typed transactions whose
// calendar date falls in the given month and year.
func CalculateMonthlyTotals(transactions []entity.Transaction, month time.Month, year int) MonthlyTotals {
	totals := MonthlyTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, t := range transactions {
		if !t.InMonth(month, year) {
			continue
		}
		switch t.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	return totals
}

// CalculateMonthlyBalance returns income minus expenses for the given month.
func CalculateMonthlyBalance(transactions []entity.Transaction, month time.Month, year int) decimal.Decimal {
	return CalculateMonthlyTotals(transactions, month, year).Balance()
}

// CalculateSavingsRate returns (income-expenses)/income as a percentage.
// Undefined when income is zero; reported as 0%.
func CalculateSavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(decimal.NewFromInt(100))
}

// CalculateNetWorth sums asset current values and subtracts liabilities.
// A transaction counts as a liability when its type is "liability" or it is
// an expense in the "Loan" category. No entry path creates liability-typed
// transactions today; the rule is kept for data that carries them.
func CalculateNetWorth(assets []entity.Asset, transactions []entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.CurrentValue)
	}
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeLiability ||
			(t.Type == entity.TransactionTypeExpense && t.Category == "Loan") {
			total = total.Sub(t.Amount)
		}
	}
	return total
}
