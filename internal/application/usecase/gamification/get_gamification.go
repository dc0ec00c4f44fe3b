package gamification

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// GetGamificationOutput carries the score, level and achievement set.
type GetGamificationOutput struct {
	Score        Score
	LevelTitle   string
	Achievements []Achievement
}

// GetGamificationUseCase recomputes the full gamification view from the
// current collections on every call.
type GetGamificationUseCase struct {
	transactions adapter.TransactionStore
	goals        adapter.GoalStore
	now          func() time.Time
}

// NewGetGamificationUseCase creates a new GetGamificationUseCase instance.
func NewGetGamificationUseCase(
	transactions adapter.TransactionStore,
	goals adapter.GoalStore,
	now func() time.Time,
) *GetGamificationUseCase {
	if now == nil {
		now = time.Now
	}
	return &GetGamificationUseCase{
		transactions: transactions,
		goals:        goals,
		now:          now,
	}
}

// Execute computes the current score, level title and achievements.
func (uc *GetGamificationUseCase) Execute(ctx context.Context) (*GetGamificationOutput, error) {
	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := uc.goals.List(ctx)
	if err != nil {
		return nil, err
	}

	score := ComputeScore(transactions, goals, uc.now())
	return &GetGamificationOutput{
		Score:        score,
		LevelTitle:   LevelTitle(score.Level),
		Achievements: EvaluateAchievements(transactions, goals, score),
	}, nil
}
