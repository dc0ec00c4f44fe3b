package goal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// UpdateGoalInput represents the partial update of a goal. Nil fields are
// left untouched.
type UpdateGoalInput struct {
	ID            uuid.UUID
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Type          *entity.GoalType
	DailyAmount   *decimal.Decimal
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goals adapter.GoalStore
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goals adapter.GoalStore) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{goals: goals}
}

// Execute merges the provided fields into the stored goal.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if input.Type != nil && !isValidGoalType(*input.Type) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be one of save, spend, invest",
			domainerror.ErrInvalidGoalType,
		)
	}
	for _, d := range []*decimal.Decimal{input.TargetAmount, input.CurrentAmount} {
		if d != nil && d.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalAmount,
				"amounts must not be negative",
				domainerror.ErrInvalidGoalAmount,
			)
		}
	}

	stored, found, err := uc.goals.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if input.Name != nil {
		stored.Name = *input.Name
	}
	if input.TargetAmount != nil {
		stored.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		stored.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		stored.Deadline = input.Deadline
	}
	if input.Type != nil {
		stored.Type = *input.Type
	}
	if input.DailyAmount != nil {
		stored.DailyAmount = input.DailyAmount
	}
	stored.UpdatedAt = time.Now().UTC()

	if _, err := uc.goals.Replace(ctx, stored); err != nil {
		return nil, err
	}

	slog.Info("Goal updated", "goal_id", stored.ID)
	return &UpdateGoalOutput{Goal: stored}, nil
}
