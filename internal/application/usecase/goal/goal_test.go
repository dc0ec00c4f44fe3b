package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/infra/kv"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
)

func newStore() adapter.GoalStore {
	return persistence.NewGoalStore(kv.NewMemoryStore())
}

func createInput(name, target, current string) CreateGoalInput {
	tgt, _ := decimal.NewFromString(target)
	cur, _ := decimal.NewFromString(current)
	return CreateGoalInput{
		Name:          name,
		TargetAmount:  tgt,
		CurrentAmount: cur,
		Type:          entity.GoalTypeSave,
	}
}

func TestCreateAndListGoals(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	create := NewCreateGoalUseCase(store)
	list := NewListGoalsUseCase(store)

	if _, err := create.Execute(ctx, createInput("Emergency Fund", "60000", "30000")); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Over-funded: progress above 100% is allowed.
	if _, err := create.Execute(ctx, createInput("Vacation", "10000", "12000")); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := list.Execute(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Goals) != 2 {
		t.Fatalf("got %d goals", len(out.Goals))
	}
	if !out.Goals[0].ProgressPercent.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("progress = %s, want 50", out.Goals[0].ProgressPercent)
	}
	if !out.Goals[1].ProgressPercent.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("over-funded progress = %s, want 120", out.Goals[1].ProgressPercent)
	}
}

func TestCreateGoalRejectsInvalidInput(t *testing.T) {
	store := newStore()
	create := NewCreateGoalUseCase(store)
	ctx := context.Background()

	bad := createInput("X", "100", "0")
	bad.Type = "retire"
	if _, err := create.Execute(ctx, bad); !errors.Is(err, domainerror.ErrInvalidGoalType) {
		t.Fatalf("invalid type error = %v", err)
	}
	if _, err := create.Execute(ctx, createInput("X", "-100", "0")); !errors.Is(err, domainerror.ErrInvalidGoalAmount) {
		t.Fatalf("negative target error = %v", err)
	}
}

func TestUpdateGoalMergesFields(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	create := NewCreateGoalUseCase(store)
	update := NewUpdateGoalUseCase(store)

	out, err := create.Execute(ctx, createInput("Emergency Fund", "60000", "30000"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	current := decimal.NewFromInt(45000)
	updated, err := update.Execute(ctx, UpdateGoalInput{
		ID:            out.Goal.ID,
		CurrentAmount: &current,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Goal.CurrentAmount.Equal(current) {
		t.Fatalf("current = %s", updated.Goal.CurrentAmount)
	}
	if updated.Goal.Name != "Emergency Fund" || !updated.Goal.TargetAmount.Equal(decimal.NewFromInt(60000)) {
		t.Fatalf("unpatched fields changed: %+v", updated.Goal)
	}
}

func TestDeleteGoal(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	create := NewCreateGoalUseCase(store)
	del := NewDeleteGoalUseCase(store)
	list := NewListGoalsUseCase(store)

	out, err := create.Execute(ctx, createInput("Emergency Fund", "60000", "30000"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := del.Execute(ctx, DeleteGoalInput{ID: out.Goal.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	remaining, _ := list.Execute(ctx)
	if len(remaining.Goals) != 0 {
		t.Fatalf("goals after delete = %+v", remaining.Goals)
	}
}
