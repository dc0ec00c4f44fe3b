// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Type          entity.GoalType
	DailyAmount   *decimal.Decimal
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goals adapter.GoalStore
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goals adapter.GoalStore) *CreateGoalUseCase {
	return &CreateGoalUseCase{goals: goals}
}

// Execute creates the goal. No invariant caps currentAmount at targetAmount;
// over-funded goals simply report progress above 100%.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !isValidGoalType(input.Type) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be one of save, spend, invest",
			domainerror.ErrInvalidGoalType,
		)
	}
	if input.TargetAmount.IsNegative() || input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"amounts must not be negative",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	created := entity.NewGoal(
		input.Name,
		input.TargetAmount,
		input.CurrentAmount,
		input.Deadline,
		input.Type,
		input.DailyAmount,
	)
	if err := uc.goals.Add(ctx, created); err != nil {
		return nil, err
	}

	slog.Info("Goal created", "goal_id", created.ID, "type", created.Type)
	return &CreateGoalOutput{Goal: created}, nil
}

func isValidGoalType(t entity.GoalType) bool {
	switch t {
	case entity.GoalTypeSave, entity.GoalTypeSpend, entity.GoalTypeInvest:
		return true
	}
	return false
}
