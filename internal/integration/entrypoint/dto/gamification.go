package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/gamification"
)

// ScoreComponentsResponse breaks the financial health score into its four
// weighted components, each already capped.
type ScoreComponentsResponse struct {
	Savings     decimal.Decimal `json:"savings"`
	Goals       decimal.Decimal `json:"goals"`
	Streak      decimal.Decimal `json:"streak"`
	Consistency decimal.Decimal `json:"consistency"`
}

// AchievementResponse represents one achievement and its current state.
type AchievementResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Achieved    bool   `json:"achieved"`
	Icon        string `json:"icon"`
}

// GamificationResponse represents the full gamification view.
type GamificationResponse struct {
	Score        int                     `json:"score"`
	Level        int                     `json:"level"`
	LevelTitle   string                  `json:"level_title"`
	XP           int                     `json:"xp"`
	Streak       int                     `json:"streak"`
	Components   ScoreComponentsResponse `json:"components"`
	Achievements []AchievementResponse   `json:"achievements"`
}

// ToGamificationResponse converts the gamification output to its response
// form.
func ToGamificationResponse(out *gamification.GetGamificationOutput) GamificationResponse {
	achievements := make([]AchievementResponse, 0, len(out.Achievements))
	for _, a := range out.Achievements {
		achievements = append(achievements, AchievementResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Achieved:    a.Achieved,
			Icon:        a.Icon,
		})
	}

	return GamificationResponse{
		Score:      out.Score.Value,
		Level:      out.Score.Level,
		LevelTitle: out.LevelTitle,
		XP:         out.Score.XP,
		Streak:     out.Score.Streak,
		Components: ScoreComponentsResponse{
			Savings:     out.Score.SavingsComponent,
			Goals:       out.Score.GoalComponent,
			Streak:      out.Score.StreakComponent,
			Consistency: out.Score.ConsistencyComponent,
		},
		Achievements: achievements,
	}
}
