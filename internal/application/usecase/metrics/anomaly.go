package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// anomalyThresholdPercent is the absolute percentage change in a category's
// month-over-month expense total above which the change is flagged.
const anomalyThresholdPercent = 30

// Anomaly reports a category whose current-month spend deviates from the
// prior calendar month by more than the threshold.
type Anomaly struct {
	Category        string
	CurrentAmount   decimal.Decimal
	LastMonthAmount decimal.Decimal
	// ChangePercent is signed and rounded to one decimal.
	ChangePercent decimal.Decimal
}

// CategoryExpenses totals expense transactions per category name for the
// given month. Transactions without a category fall under "Uncategorized".
func CategoryExpenses(transactions []entity.Transaction, month time.Month, year int) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || !t.InMonth(month, year) {
			continue
		}
		name := t.Category
		if name == "" {
			name = "Uncategorized"
		}
		totals[name] = totals[name].Add(t.Amount)
	}
	return totals
}

// DetectAnomaly compares currentAmount against the same category's expense
// total in the calendar month preceding now. A zero prior-month total yields
// nil: there is no meaningful ratio to compute, regardless of the current
// amount.
func DetectAnomaly(transactions []entity.Transaction, category string, currentAmount decimal.Decimal, now time.Time) *Anomaly {
	lastMonth := now.AddDate(0, -1, 0)

	lastMonthTotal := decimal.Zero
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || t.Category != category {
			continue
		}
		if t.InMonth(lastMonth.Month(), lastMonth.Year()) {
			lastMonthTotal = lastMonthTotal.Add(t.Amount)
		}
	}

	if lastMonthTotal.IsZero() {
		return nil
	}

	change := currentAmount.Sub(lastMonthTotal).
		Div(lastMonthTotal).
		Mul(decimal.NewFromInt(100))

	if change.Abs().LessThanOrEqual(decimal.NewFromInt(anomalyThresholdPercent)) {
		return nil
	}

	return &Anomaly{
		Category:        category,
		CurrentAmount:   currentAmount,
		LastMonthAmount: lastMonthTotal,
		ChangePercent:   change.Round(1),
	}
}

// DetectAnomalies runs anomaly detection for every category with expenses in
// the current calendar month.
func DetectAnomalies(transactions []entity.Transaction, now time.Time) []Anomaly {
	var anomalies []Anomaly
	for category, amount := range CategoryExpenses(transactions, now.Month(), now.Year()) {
		if a := DetectAnomaly(transactions, category, amount, now); a != nil {
			anomalies = append(anomalies, *a)
		}
	}
	// Map iteration order is random; keep output stable for rendering.
	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].Category < anomalies[j].Category
	})
	return anomalies
}
