package gamification

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Per-component caps. The components sum to at most 100.
var (
	savingsCap     = decimal.NewFromInt(40)
	goalCap        = decimal.NewFromInt(30)
	streakCap      = decimal.NewFromInt(20)
	consistencyCap = decimal.NewFromInt(10)

	savingsDivisor = decimal.RequireFromString("2.5")
	goalDivisor    = decimal.RequireFromString("3.33")
	streakDivisor  = decimal.NewFromInt(5)
	countDivisor   = decimal.NewFromInt(100)

	xpPerPoint = decimal.NewFromInt(10)
)

// Score is the composed finance score with its level and experience.
type Score struct {
	Value  int
	Level  int
	XP     int
	Streak int

	SavingsComponent     decimal.Decimal
	GoalComponent        decimal.Decimal
	StreakComponent      decimal.Decimal
	ConsistencyComponent decimal.Decimal
}

// ComputeScore composes the four weighted components from the current
// collections. Each component is capped before summing; experience is ten
// times the capped sum and a level is earned every 100 XP.
//
// The savings component is skipped entirely when the month has no income,
// and the goal component when there are no goals, matching how the score
// has always been presented: an absent signal contributes nothing rather
// than dragging the score down.
func ComputeScore(transactions []entity.Transaction, goals []entity.Goal, now time.Time) Score {
	streak := ComputeStreak(transactions, now)

	score := Score{Streak: streak}

	totals := metrics.CalculateMonthlyTotals(transactions, now.Month(), now.Year())
	if totals.Income.IsPositive() {
		rate := metrics.CalculateSavingsRate(totals.Income, totals.Expenses)
		score.SavingsComponent = decimal.Min(rate.Div(savingsDivisor), savingsCap)
	}

	if len(goals) > 0 {
		sum := decimal.Zero
		for _, g := range goals {
			sum = sum.Add(g.ProgressPercent())
		}
		avg := sum.Div(decimal.NewFromInt(int64(len(goals))))
		score.GoalComponent = decimal.Min(avg.Div(goalDivisor), goalCap)
	}

	score.StreakComponent = decimal.Min(decimal.NewFromInt(int64(streak)).Div(streakDivisor), streakCap)
	score.ConsistencyComponent = decimal.Min(decimal.NewFromInt(int64(len(transactions))).Div(countDivisor), consistencyCap)

	total := score.SavingsComponent.
		Add(score.GoalComponent).
		Add(score.StreakComponent).
		Add(score.ConsistencyComponent)
	xp := total.Mul(xpPerPoint)

	score.Value = int(total.Round(0).IntPart())
	score.XP = int(xp.Round(0).IntPart())
	score.Level = int(xp.Div(decimal.NewFromInt(100)).Floor().IntPart()) + 1
	return score
}

// LevelTitle names the milestone bands a level falls into.
func LevelTitle(level int) string {
	switch {
	case level >= 50:
		return "Financial Master"
	case level >= 30:
		return "Wealth Builder"
	case level >= 20:
		return "Smart Saver"
	case level >= 10:
		return "Budget Expert"
	case level >= 5:
		return "Money Manager"
	default:
		return "Beginner"
	}
}
