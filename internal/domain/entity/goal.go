// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType represents what a goal is tracking towards.
type GoalType string

const (
	GoalTypeSave   GoalType = "save"
	GoalTypeSpend  GoalType = "spend"
	GoalTypeInvest GoalType = "invest"
)

// Goal represents a savings/spending/investment target.
type Goal struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	TargetAmount  decimal.Decimal  `json:"target_amount"`
	CurrentAmount decimal.Decimal  `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline,omitempty"`
	Type          GoalType         `json:"type"`
	DailyAmount   *decimal.Decimal `json:"daily_amount,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewGoal creates a new Goal entity.
func NewGoal(
	name string,
	targetAmount decimal.Decimal,
	currentAmount decimal.Decimal,
	deadline *time.Time,
	goalType GoalType,
	dailyAmount *decimal.Decimal,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Type:          goalType,
		DailyAmount:   dailyAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProgressPercent returns current/target as a percentage. There is no
// invariant capping progress at 100; over-funded goals report over 100%.
// A zero target reports zero progress.
func (g *Goal) ProgressPercent() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}
