package gamification

import (
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Achievement is a milestone evaluated against the current collections.
// Nothing is persisted: each render recomputes the full set, so an
// achievement can be "lost" again if the underlying fact stops holding.
type Achievement struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Achieved    bool   `json:"achieved"`
	Icon        string `json:"icon"`
}

// EvaluateAchievements returns the fixed achievement set with each entry's
// achieved flag derived from the given score.
func EvaluateAchievements(transactions []entity.Transaction, goals []entity.Goal, score Score) []Achievement {
	return []Achievement{
		{ID: 1, Name: "First Step", Description: "Added your first transaction", Achieved: len(transactions) > 0, Icon: "🎯"},
		{ID: 2, Name: "Goal Setter", Description: "Created your first goal", Achieved: len(goals) > 0, Icon: "🎯"},
		{ID: 3, Name: "Week Streak", Description: "7 days budget streak", Achieved: score.Streak >= 7, Icon: "🔥"},
		{ID: 4, Name: "Month Master", Description: "30 days budget streak", Achieved: score.Streak >= 30, Icon: "💪"},
		{ID: 5, Name: "Perfect Score", Description: "Finance score above 90", Achieved: score.Value >= 90, Icon: "⭐"},
	}
}
