package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Fixed needs/wants category split used by the needs-vs-wants view.
var (
	needsCategories = map[string]bool{"Bills": true, "Transport": true, "Food": true}
	wantsCategories = map[string]bool{"Entertainment": true, "Shopping": true}
)

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown returns per-category expense totals for the month,
// sorted by amount descending so the biggest slice renders first.
func CategoryBreakdown(transactions []entity.Transaction, month time.Month, year int) []CategoryTotal {
	expenses := CategoryExpenses(transactions, month, year)
	breakdown := make([]CategoryTotal, 0, len(expenses))
	for category, amount := range expenses {
		breakdown = append(breakdown, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Category < breakdown[j].Category
		}
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	return breakdown
}

// MonthPoint is one month of the income/expense comparison series.
type MonthPoint struct {
	Month    time.Month
	Year     int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// MonthlyComparison builds an n-month series ending at the month containing
// now, oldest first. Empty months appear with zero values so charts have no
// gaps.
func MonthlyComparison(transactions []entity.Transaction, months int, now time.Time) []MonthPoint {
	series := make([]MonthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		at := now.AddDate(0, -i, 0)
		totals := CalculateMonthlyTotals(transactions, at.Month(), at.Year())
		series = append(series, MonthPoint{
			Month:    at.Month(),
			Year:     at.Year(),
			Income:   totals.Income,
			Expenses: totals.Expenses,
			Net:      totals.Balance(),
		})
	}
	return series
}

// DayFlow is one day of the cash-flow heatmap.
type DayFlow struct {
	Day      int
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CashFlowHeatmap returns per-day income and expense totals for every day of
// the given month, including days without transactions.
func CashFlowHeatmap(transactions []entity.Transaction, month time.Month, year int) []DayFlow {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]DayFlow, daysInMonth)
	for i := range days {
		days[i] = DayFlow{Day: i + 1, Income: decimal.Zero, Expenses: decimal.Zero}
	}
	for _, t := range transactions {
		if !t.InMonth(month, year) {
			continue
		}
		d := &days[t.Date.Day()-1]
		switch t.Type {
		case entity.TransactionTypeIncome:
			d.Income = d.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			d.Expenses = d.Expenses.Add(t.Amount)
		}
	}
	return days
}

// NeedsWantsSplit partitions a month's expenses into needs, wants and other.
type NeedsWantsSplit struct {
	Needs decimal.Decimal
	Wants decimal.Decimal
	Other decimal.Decimal
}

// NeedsVsWants splits the month's expenses by the fixed category lists.
func NeedsVsWants(transactions []entity.Transaction, month time.Month, year int) NeedsWantsSplit {
	split := NeedsWantsSplit{Needs: decimal.Zero, Wants: decimal.Zero, Other: decimal.Zero}
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || !t.InMonth(month, year) {
			continue
		}
		switch {
		case needsCategories[t.Category]:
			split.Needs = split.Needs.Add(t.Amount)
		case wantsCategories[t.Category]:
			split.Wants = split.Wants.Add(t.Amount)
		default:
			split.Other = split.Other.Add(t.Amount)
		}
	}
	return split
}

// LifestyleInflation reports the expense trend over the trailing months and
// the percentage change from the first month to the last. The change is zero
// when the first month has no expenses.
type LifestyleInflation struct {
	Series        []MonthPoint
	ChangePercent decimal.Decimal
}

// CalculateLifestyleInflation builds the trailing expense series (6 months by
// convention) and its first-to-last percentage change.
func CalculateLifestyleInflation(transactions []entity.Transaction, months int, now time.Time) LifestyleInflation {
	series := MonthlyComparison(transactions, months, now)
	inflation := LifestyleInflation{Series: series, ChangePercent: decimal.Zero}
	if len(series) == 0 {
		return inflation
	}
	first := series[0].Expenses
	last := series[len(series)-1].Expenses
	if first.IsPositive() {
		inflation.ChangePercent = last.Sub(first).Div(first).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return inflation
}
