package goal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GoalWithProgress pairs a goal with its computed progress percentage.
type GoalWithProgress struct {
	Goal            entity.Goal
	ProgressPercent decimal.Decimal
}

// ListGoalsOutput represents the output of goal listing.
type ListGoalsOutput struct {
	Goals []GoalWithProgress
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	goals adapter.GoalStore
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goals adapter.GoalStore) *ListGoalsUseCase {
	return &ListGoalsUseCase{goals: goals}
}

// Execute lists all goals with their progress.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	items, err := uc.goals.List(ctx)
	if err != nil {
		return nil, err
	}

	goals := make([]GoalWithProgress, len(items))
	for i, g := range items {
		goals[i] = GoalWithProgress{
			Goal:            g,
			ProgressPercent: g.ProgressPercent(),
		}
	}
	return &ListGoalsOutput{Goals: goals}, nil
}
