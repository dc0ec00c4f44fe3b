package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Recurrence frequency labels.
const (
	FrequencyWeekly    = "Weekly"
	FrequencyMonthly   = "Monthly"
	FrequencyIrregular = "Irregular"
)

// RecurringExpense describes a merchant charged at least twice, with the
// cadence inferred from the gap between the two most recent charges.
type RecurringExpense struct {
	Merchant      string
	Category      string
	AverageAmount decimal.Decimal
	Frequency     string
	Count         int
	LastDate      time.Time
}

// DetectRecurringExpenses groups expense transactions by lowercased merchant
// and reports every merchant that appears at least twice. Merchant and
// category in the result come from the most recent transaction, preserving
// the user's original casing.
func DetectRecurringExpenses(transactions []entity.Transaction) []RecurringExpense {
	byMerchant := make(map[string][]entity.Transaction)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		key := strings.ToLower(t.Merchant)
		byMerchant[key] = append(byMerchant[key], t)
	}

	var recurring []RecurringExpense
	for _, group := range byMerchant {
		if len(group) < 2 {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.After(group[j].Date)
		})

		total := decimal.Zero
		for _, t := range group {
			total = total.Add(t.Amount)
		}
		average := total.Div(decimal.NewFromInt(int64(len(group))))

		gapDays := group[0].Date.Sub(group[1].Date).Hours() / 24

		recurring = append(recurring, RecurringExpense{
			Merchant:      group[0].Merchant,
			Category:      group[0].Category,
			AverageAmount: average,
			Frequency:     classifyGap(gapDays),
			Count:         len(group),
			LastDate:      group[0].Date,
		})
	}

	sort.Slice(recurring, func(i, j int) bool {
		return strings.ToLower(recurring[i].Merchant) < strings.ToLower(recurring[j].Merchant)
	})
	return recurring
}

// classifyGap maps the gap between the two latest charges to a frequency.
// Weekly must be ruled out before Monthly: a gap of exactly 8 days is Weekly,
// a gap of 20 is Monthly.
func classifyGap(days float64) string {
	switch {
	case days <= 8:
		return FrequencyWeekly
	case days <= 35:
		return FrequencyMonthly
	default:
		return FrequencyIrregular
	}
}
