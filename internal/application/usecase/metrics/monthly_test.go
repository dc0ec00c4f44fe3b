package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func tx(t *testing.T, typ entity.TransactionType, amount, merchant, category, date string) entity.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad amount %q: %v", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad date %q: %v", date, err)
	}
	return *entity.NewTransaction(typ, amt, merchant, category, day, "")
}

func asset(t *testing.T, name string, typ entity.AssetType, quantity, purchasePrice, currentPrice string) entity.Asset {
	t.Helper()
	q, _ := decimal.NewFromString(quantity)
	pp, _ := decimal.NewFromString(purchasePrice)
	cp, _ := decimal.NewFromString(currentPrice)
	return *entity.NewAsset(name, typ, q, pp, cp, "", "")
}

func TestCalculateMonthlyBalance(t *testing.T) {
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeIncome, "50000", "Acme Corp", "Salary", "2024-03-01"),
		tx(t, entity.TransactionTypeExpense, "1200", "Big Bazaar", "Shopping", "2024-03-10"),
		tx(t, entity.TransactionTypeExpense, "800", "Zomato", "Food", "2024-03-15"),
		// Different month, must be excluded.
		tx(t, entity.TransactionTypeExpense, "9999", "Zomato", "Food", "2024-02-15"),
		// Same month, different year, must be excluded.
		tx(t, entity.TransactionTypeIncome, "4444", "Acme Corp", "Salary", "2023-03-01"),
	}

	balance := CalculateMonthlyBalance(transactions, time.March, 2024)
	if want := decimal.NewFromInt(48000); !balance.Equal(want) {
		t.Fatalf("balance = %s, want %s", balance, want)
	}

	totals := CalculateMonthlyTotals(transactions, time.March, 2024)
	if !totals.Balance().Equal(totals.Income.Sub(totals.Expenses)) {
		t.Fatalf("balance identity broken: %s != %s - %s", totals.Balance(), totals.Income, totals.Expenses)
	}
}

func TestCalculateMonthlyBalanceEmptyMonth(t *testing.T) {
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeIncome, "50000", "Acme Corp", "Salary", "2024-03-01"),
	}
	if balance := CalculateMonthlyBalance(transactions, time.July, 2024); !balance.IsZero() {
		t.Fatalf("balance for empty month = %s, want 0", balance)
	}
	if balance := CalculateMonthlyBalance(nil, time.July, 2024); !balance.IsZero() {
		t.Fatalf("balance for no transactions = %s, want 0", balance)
	}
}

func TestCalculateSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		want     string
	}{
		{"twenty percent", "50000", "40000", "20"},
		{"negative rate", "1000", "1500", "-50"},
		{"zero income reports zero", "0", "500", "0"},
		{"no expenses", "1000", "0", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income, _ := decimal.NewFromString(tt.income)
			expenses, _ := decimal.NewFromString(tt.expenses)
			want, _ := decimal.NewFromString(tt.want)
			if got := CalculateSavingsRate(income, expenses); !got.Equal(want) {
				t.Fatalf("savings rate = %s, want %s", got, want)
			}
		})
	}
}

func TestCalculateNetWorth(t *testing.T) {
	assets := []entity.Asset{
		asset(t, "NIFTYBEES", entity.AssetTypeETF, "100", "200", "250"), // value 25000
		asset(t, "HDFC Fund", entity.AssetTypeMutualFund, "10", "500", "450"), // value 4500
	}
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeExpense, "5000", "HDFC Bank", "Loan", "2024-03-05"),
		// Expenses outside the Loan category do not count as liabilities.
		tx(t, entity.TransactionTypeExpense, "700", "Zomato", "Food", "2024-03-06"),
	}
	// The liability transaction type is never created by any entry path but
	// must still be honored when present.
	liability := tx(t, entity.TransactionTypeExpense, "2000", "Bajaj Finserv", "EMI", "2024-03-07")
	liability.Type = entity.TransactionTypeLiability
	transactions = append(transactions, liability)

	got := CalculateNetWorth(assets, transactions)
	if want := decimal.NewFromInt(22500); !got.Equal(want) {
		t.Fatalf("net worth = %s, want %s", got, want)
	}
}

func TestCalculateNetWorthEmpty(t *testing.T) {
	if got := CalculateNetWorth(nil, nil); !got.IsZero() {
		t.Fatalf("net worth of nothing = %s, want 0", got)
	}
}

// Every metric must be a pure function: the same inputs twice must produce
// identical outputs and leave the inputs untouched.
func TestMetricsAreIdempotent(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	transactions := []entity.Transaction{
		tx(t, entity.TransactionTypeIncome, "50000", "Acme Corp", "Salary", "2024-03-01"),
		tx(t, entity.TransactionTypeExpense, "800", "Zomato", "Food", "2024-03-10"),
		tx(t, entity.TransactionTypeExpense, "750", "Zomato", "Food", "2024-02-10"),
		tx(t, entity.TransactionTypeExpense, "500", "Netflix", "Entertainment", "2024-02-01"),
		tx(t, entity.TransactionTypeExpense, "500", "Netflix", "Entertainment", "2024-03-01"),
	}
	assets := []entity.Asset{
		asset(t, "NIFTYBEES", entity.AssetTypeETF, "100", "200", "250"),
	}

	first := CalculateMonthlyBalance(transactions, now.Month(), now.Year())
	second := CalculateMonthlyBalance(transactions, now.Month(), now.Year())
	if !first.Equal(second) {
		t.Fatalf("monthly balance not idempotent: %s vs %s", first, second)
	}

	if a, b := CalculateNetWorth(assets, transactions), CalculateNetWorth(assets, transactions); !a.Equal(b) {
		t.Fatalf("net worth not idempotent: %s vs %s", a, b)
	}

	r1 := DetectRecurringExpenses(transactions)
	r2 := DetectRecurringExpenses(transactions)
	if len(r1) != len(r2) {
		t.Fatalf("recurring detection not idempotent: %d vs %d results", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i].Merchant != r2[i].Merchant || r1[i].Frequency != r2[i].Frequency || !r1[i].AverageAmount.Equal(r2[i].AverageAmount) {
			t.Fatalf("recurring detection not idempotent at %d: %+v vs %+v", i, r1[i], r2[i])
		}
	}

	a1 := DetectAnomalies(transactions, now)
	a2 := DetectAnomalies(transactions, now)
	if len(a1) != len(a2) {
		t.Fatalf("anomaly detection not idempotent: %d vs %d results", len(a1), len(a2))
	}

	p1 := PredictMonthEndBalance(transactions, first, now)
	p2 := PredictMonthEndBalance(transactions, first, now)
	if !p1.Equal(p2) {
		t.Fatalf("projection not idempotent: %s vs %s", p1, p2)
	}
}
