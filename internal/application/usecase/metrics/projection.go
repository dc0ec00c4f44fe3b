package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Emergency fund status labels.
const (
	EmergencyStatusExcellent = "Excellent"
	EmergencyStatusGood      = "Good"
	EmergencyStatusFair      = "Fair"
	EmergencyStatusPoor      = "Poor"
)

// PredictMonthEndBalance projects the end-of-month balance by extrapolating
// the month's average daily spend across the remaining days. Days elapsed is
// clamped to at least 1 so the first day of the month cannot divide by zero.
func PredictMonthEndBalance(transactions []entity.Transaction, currentBalance decimal.Decimal, now time.Time) decimal.Decimal {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	daysElapsed := now.Day()
	if daysElapsed < 1 {
		daysElapsed = 1
	}
	daysRemaining := daysInMonth - daysElapsed

	spent := CalculateMonthlyTotals(transactions, now.Month(), now.Year()).Expenses
	dailyAverage := spent.Div(decimal.NewFromInt(int64(daysElapsed)))

	return currentBalance.Sub(dailyAverage.Mul(decimal.NewFromInt(int64(daysRemaining))))
}

// EmergencyFund scores how many months of expenses the current balance
// covers.
type EmergencyFund struct {
	Score         int
	MonthsCovered decimal.Decimal
	Status        string
}

// CalculateEmergencyFund bands monthsCovered = balance/monthlyExpenses into a
// score, evaluated from the highest tier down with inclusive lower bounds.
// Zero monthly expenses means coverage cannot be computed and scores 0.
func CalculateEmergencyFund(balance, monthlyExpenses decimal.Decimal) EmergencyFund {
	monthsCovered := decimal.Zero
	if monthlyExpenses.IsPositive() {
		monthsCovered = balance.Div(monthlyExpenses)
	}

	var score int
	var status string
	switch {
	case monthsCovered.GreaterThanOrEqual(decimal.NewFromInt(6)):
		score, status = 100, EmergencyStatusExcellent
	case monthsCovered.GreaterThanOrEqual(decimal.NewFromInt(3)):
		score, status = 75, EmergencyStatusGood
	case monthsCovered.GreaterThanOrEqual(decimal.NewFromInt(1)):
		score, status = 50, EmergencyStatusFair
	case monthsCovered.IsPositive():
		score, status = 25, EmergencyStatusPoor
	default:
		score, status = 0, EmergencyStatusPoor
	}

	return EmergencyFund{
		Score:         score,
		MonthsCovered: monthsCovered.Round(1),
		Status:        status,
	}
}
