package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goals adapter.GoalStore
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goals adapter.GoalStore) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goals: goals}
}

// Execute deletes the goal. Absent ids are a no-op.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goals.Delete(ctx, input.ID); err != nil {
		return err
	}
	slog.Info("Goal deleted", "goal_id", input.ID)
	return nil
}
