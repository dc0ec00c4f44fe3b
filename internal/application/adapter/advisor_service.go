// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdvisorRequest carries the already-computed insight figures the advisor
// narrates. The advisor never sees raw records.
type AdvisorRequest struct {
	MonthLabel         string
	MonthlyIncome      string
	MonthlyExpenses    string
	SavingsRatePercent string
	ProjectedBalance   string
	EmergencyFundNote  string
	AnomalyNotes       []string
	RecurringNotes     []string
	DriftNotes         []string
}

// AdvisorService generates short natural-language recommendations from the
// derived metrics. Implementations must degrade cleanly: the dashboard never
// blocks or fails because the advisor is unavailable.
type AdvisorService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Recommend returns a short list of recommendation strings.
	Recommend(ctx context.Context, request *AdvisorRequest) ([]string, error)
}
