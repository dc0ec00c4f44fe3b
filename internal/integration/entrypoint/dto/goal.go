package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/goal"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a goal.
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal  `json:"target_amount" binding:"required"`
	CurrentAmount decimal.Decimal  `json:"current_amount"`
	Deadline      *time.Time       `json:"deadline,omitempty"`
	Type          string           `json:"type" binding:"required,oneof=save spend invest"`
	DailyAmount   *decimal.Decimal `json:"daily_amount,omitempty"`
}

// UpdateGoalRequest represents the partial-update request body. Absent fields
// are left untouched.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *time.Time       `json:"deadline,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=save spend invest"`
	DailyAmount   *decimal.Decimal `json:"daily_amount,omitempty"`
}

// GoalResponse represents a goal in API responses. ProgressPercent is
// computed on read and never stored.
type GoalResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	TargetAmount    decimal.Decimal  `json:"target_amount"`
	CurrentAmount   decimal.Decimal  `json:"current_amount"`
	ProgressPercent decimal.Decimal  `json:"progress_percent"`
	Deadline        *time.Time       `json:"deadline,omitempty"`
	Type            string           `json:"type"`
	DailyAmount     *decimal.Decimal `json:"daily_amount,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// ListGoalsResponse represents the response for listing goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}

// ToGoalResponse converts a Goal entity to its response form.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:              g.ID.String(),
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		ProgressPercent: g.ProgressPercent(),
		Deadline:        g.Deadline,
		Type:            string(g.Type),
		DailyAmount:     g.DailyAmount,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

// ToListGoalsResponse converts goals with computed progress to their response
// form.
func ToListGoalsResponse(goals []goal.GoalWithProgress) ListGoalsResponse {
	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		resp := ToGoalResponse(&goals[i].Goal)
		resp.ProgressPercent = goals[i].ProgressPercent
		responses = append(responses, resp)
	}
	return ListGoalsResponse{
		Goals: responses,
		Total: len(responses),
	}
}
