// Package gamification turns the dashboard's financial figures into a
// score, level and achievement set. Like the metrics package, everything
// here is a pure function recomputed on every read.
package gamification

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// streakWindowDays bounds how far back the streak walk goes.
const streakWindowDays = 30

// budgetTolerance allows daily spend up to 110% of the daily budget.
var budgetTolerance = decimal.RequireFromString("1.1")

// ComputeStreak counts consecutive days, walking backward from today, whose
// expense total stayed within 110% of the daily budget. The daily budget is
// the current month's total expenses divided by 30, fixed for the whole walk.
// The walk stops at the first day over budget and never looks back more than
// 30 days.
//
// With no expenses at all the budget is zero and every quiet day passes the
// zero-spend check, so an empty ledger yields the full 30-day streak. That
// mirrors how the dashboard has always rewarded not spending.
func ComputeStreak(transactions []entity.Transaction, now time.Time) int {
	monthExpenses := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && t.InMonth(now.Month(), now.Year()) {
			monthExpenses = monthExpenses.Add(t.Amount)
		}
	}
	dailyBudget := monthExpenses.Div(decimal.NewFromInt(streakWindowDays))
	limit := dailyBudget.Mul(budgetTolerance)

	streak := 0
	day := now
	for i := 0; i < streakWindowDays; i++ {
		if dailyExpenses(transactions, day).GreaterThan(limit) {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dailyExpenses(transactions []entity.Transaction, day time.Time) decimal.Decimal {
	total := decimal.Zero
	y, m, d := day.Date()
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		ty, tm, td := t.Date.Date()
		if ty == y && tm == m && td == d {
			total = total.Add(t.Amount)
		}
	}
	return total
}
