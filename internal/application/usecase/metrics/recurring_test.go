package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestDetectRecurringExpensesFrequency(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  string
	}{
		{"31 day gap is monthly", []string{"2024-01-01", "2024-02-01"}, FrequencyMonthly},
		{"7 day gap is weekly", []string{"2024-01-01", "2024-01-08"}, FrequencyWeekly},
		{"exactly 8 days is weekly", []string{"2024-01-01", "2024-01-09"}, FrequencyWeekly},
		{"20 day gap is monthly", []string{"2024-01-01", "2024-01-21"}, FrequencyMonthly},
		{"exactly 35 days is monthly", []string{"2024-01-01", "2024-02-05"}, FrequencyMonthly},
		{"40 day gap is irregular", []string{"2024-01-01", "2024-02-10"}, FrequencyIrregular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transactions []entity.Transaction
			for _, d := range tt.dates {
				transactions = append(transactions, tx(t, entity.TransactionTypeExpense, "1500", "Gym", "Bills", d))
			}
			recurring := DetectRecurringExpenses(transactions)
			if len(recurring) != 1 {
				t.Fatalf("got %d recurring merchants, want 1", len(recurring))
			}
			if recurring[0].Frequency != tt.want {
				t.Fatalf("frequency = %q, want %q", recurring[0].Frequency, tt.want)
			}
		})
	}
}

func TestDetectRecurringExpensesGrouping(t *testing.T) {
	transactions := []entity.Transaction{
		// Merchant matching is case-insensitive.
		tx(t, entity.TransactionTypeExpense, "500", "Netflix", "Entertainment", "2024-01-05"),
		tx(t, entity.TransactionTypeExpense, "700", "NETFLIX", "Entertainment", "2024-02-05"),
		// Single occurrence, not recurring.
		tx(t, entity.TransactionTypeExpense, "300", "Bookstore", "Shopping", "2024-01-10"),
		// Income never participates.
		tx(t, entity.TransactionTypeIncome, "50000", "Acme Corp", "Salary", "2024-01-01"),
		tx(t, entity.TransactionTypeIncome, "50000", "Acme Corp", "Salary", "2024-02-01"),
	}

	recurring := DetectRecurringExpenses(transactions)
	if len(recurring) != 1 {
		t.Fatalf("got %d recurring merchants, want 1: %+v", len(recurring), recurring)
	}

	r := recurring[0]
	// Casing comes from the most recent transaction.
	if r.Merchant != "NETFLIX" {
		t.Fatalf("merchant = %q, want NETFLIX", r.Merchant)
	}
	if r.Count != 2 {
		t.Fatalf("count = %d, want 2", r.Count)
	}
	if want := decimal.NewFromInt(600); !r.AverageAmount.Equal(want) {
		t.Fatalf("average = %s, want %s", r.AverageAmount, want)
	}
	if r.LastDate.Format("2006-01-02") != "2024-02-05" {
		t.Fatalf("last date = %s, want 2024-02-05", r.LastDate.Format("2006-01-02"))
	}
}

func TestDetectRecurringExpensesUsesTwoMostRecent(t *testing.T) {
	// Older history is irregular but the two latest charges are 7 days apart.
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "200", "Swiggy", "Food", "2023-06-01"),
		tx(t, entity.TransactionTypeExpense, "200", "Swiggy", "Food", "2024-01-01"),
		tx(t, entity.TransactionTypeExpense, "200", "Swiggy", "Food", "2024-01-08"),
	}

	recurring := DetectRecurringExpenses(transactions)
	if len(recurring) != 1 {
		t.Fatalf("got %d recurring merchants, want 1", len(recurring))
	}
	if recurring[0].Frequency != FrequencyWeekly {
		t.Fatalf("frequency = %q, want %q", recurring[0].Frequency, FrequencyWeekly)
	}
}
