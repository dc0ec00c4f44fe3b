package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func TestPredictMonthEndBalance(t *testing.T) {
	// March 10th: 3000 spent over 10 days, 21 days remaining in a 31-day month.
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "3000", "Zomato", "Food", "2024-03-05"),
	}

	got := PredictMonthEndBalance(transactions, decimal.NewFromInt(10000), now)
	// dailyAverage 300, projected = 10000 - 300*21 = 3700.
	if want := decimal.NewFromInt(3700); !got.Equal(want) {
		t.Fatalf("projected balance = %s, want %s", got, want)
	}
}

func TestPredictMonthEndBalanceFirstOfMonth(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "310", "Zomato", "Food", "2024-03-01"),
	}

	// Day one must not divide by zero: elapsed days is clamped to 1.
	got := PredictMonthEndBalance(transactions, decimal.NewFromInt(10000), now)
	if want := decimal.NewFromInt(700); !got.Equal(want) {
		t.Fatalf("projected balance = %s, want %s", got, want)
	}
}

func TestPredictMonthEndBalanceNoSpending(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	got := PredictMonthEndBalance(nil, decimal.NewFromInt(5000), now)
	if want := decimal.NewFromInt(5000); !got.Equal(want) {
		t.Fatalf("projected balance = %s, want %s", got, want)
	}
}

func TestCalculateEmergencyFundBands(t *testing.T) {
	tests := []struct {
		name       string
		balance    string
		expenses   string
		wantScore  int
		wantStatus string
	}{
		{"six months exactly", "60000", "10000", 100, EmergencyStatusExcellent},
		{"just below six months", "59999", "10000", 75, EmergencyStatusGood},
		{"three months", "30000", "10000", 75, EmergencyStatusGood},
		{"one month", "10000", "10000", 50, EmergencyStatusFair},
		{"under a month", "5000", "10000", 25, EmergencyStatusPoor},
		{"zero balance", "0", "10000", 0, EmergencyStatusPoor},
		{"negative balance", "-5000", "10000", 0, EmergencyStatusPoor},
		{"zero expenses", "10000", "0", 0, EmergencyStatusPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, _ := decimal.NewFromString(tt.balance)
			expenses, _ := decimal.NewFromString(tt.expenses)
			fund := CalculateEmergencyFund(balance, expenses)
			if fund.Score != tt.wantScore {
				t.Fatalf("score = %d, want %d", fund.Score, tt.wantScore)
			}
			if fund.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", fund.Status, tt.wantStatus)
			}
		})
	}
}
