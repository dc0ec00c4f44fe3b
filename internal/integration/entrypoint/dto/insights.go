package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/usecase/insights"
)

// AnomalyResponse represents one spending anomaly.
type AnomalyResponse struct {
	Category        string          `json:"category"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	LastMonthAmount decimal.Decimal `json:"last_month_amount"`
	ChangePercent   decimal.Decimal `json:"change_percent"`
}

// RecurringExpenseResponse represents one detected recurring expense.
type RecurringExpenseResponse struct {
	Merchant      string          `json:"merchant"`
	Category      string          `json:"category"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	Frequency     string          `json:"frequency"`
	Count         int             `json:"count"`
	LastDate      time.Time       `json:"last_date"`
}

// EmergencyFundResponse represents the emergency fund assessment.
type EmergencyFundResponse struct {
	Score         int             `json:"score"`
	MonthsCovered decimal.Decimal `json:"months_covered"`
	Status        string          `json:"status"`
}

// InsightsResponse represents the combined insights view.
type InsightsResponse struct {
	Anomalies        []AnomalyResponse          `json:"anomalies"`
	Recurring        []RecurringExpenseResponse `json:"recurring_expenses"`
	ProjectedBalance decimal.Decimal            `json:"projected_balance"`
	EmergencyFund    EmergencyFundResponse      `json:"emergency_fund"`
	Recommendations  []string                   `json:"recommendations"`
	AdvisorUsed      bool                       `json:"advisor_used"`
}

// EmailReportResponse represents the outcome of a report send.
type EmailReportResponse struct {
	MessageID string `json:"message_id"`
}

// ToInsightsResponse converts the insights output to its response form.
func ToInsightsResponse(out *insights.GetInsightsOutput) InsightsResponse {
	anomalies := make([]AnomalyResponse, 0, len(out.Anomalies))
	for _, a := range out.Anomalies {
		anomalies = append(anomalies, AnomalyResponse{
			Category:        a.Category,
			CurrentAmount:   a.CurrentAmount,
			LastMonthAmount: a.LastMonthAmount,
			ChangePercent:   a.ChangePercent,
		})
	}

	recurring := make([]RecurringExpenseResponse, 0, len(out.Recurring))
	for _, r := range out.Recurring {
		recurring = append(recurring, RecurringExpenseResponse{
			Merchant:      r.Merchant,
			Category:      r.Category,
			AverageAmount: r.AverageAmount,
			Frequency:     r.Frequency,
			Count:         r.Count,
			LastDate:      r.LastDate,
		})
	}

	recommendations := out.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return InsightsResponse{
		Anomalies:        anomalies,
		Recurring:        recurring,
		ProjectedBalance: out.ProjectedBalance,
		EmergencyFund: EmergencyFundResponse{
			Score:         out.EmergencyFund.Score,
			MonthsCovered: out.EmergencyFund.MonthsCovered,
			Status:        out.EmergencyFund.Status,
		},
		Recommendations: recommendations,
		AdvisorUsed:     out.AdvisorUsed,
	}
}
