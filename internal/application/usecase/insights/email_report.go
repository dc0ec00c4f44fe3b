package insights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/metrics"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// EmailReportOutput reports the delivered message id.
type EmailReportOutput struct {
	MessageID string
}

// EmailReportUseCase sends the on-demand monthly summary email. Sending is
// inline and synchronous; there is no queue behind it.
type EmailReportUseCase struct {
	transactions adapter.TransactionStore
	sender       adapter.EmailSender
	recipient    string
	now          func() time.Time
}

// NewEmailReportUseCase creates a new EmailReportUseCase instance.
func NewEmailReportUseCase(
	transactions adapter.TransactionStore,
	sender adapter.EmailSender,
	recipient string,
	now func() time.Time,
) *EmailReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &EmailReportUseCase{
		transactions: transactions,
		sender:       sender,
		recipient:    recipient,
		now:          now,
	}
}

// Execute renders and sends the current month's summary.
func (uc *EmailReportUseCase) Execute(ctx context.Context) (*EmailReportOutput, error) {
	if uc.sender == nil || !uc.sender.IsAvailable() || uc.recipient == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportingNotConfigured,
			"email reporting is not configured",
			domainerror.ErrReportingNotConfigured,
		)
	}

	transactions, err := uc.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	subject := fmt.Sprintf("Your finance summary for %s", now.Format("January 2006"))
	html := renderMonthlyReport(transactions, now)

	messageID, err := uc.sender.Send(ctx, uc.recipient, subject, html)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportSendFailed,
			"failed to send report email",
			err,
		)
	}

	slog.Info("Monthly report sent", "message_id", messageID, "to", uc.recipient)
	return &EmailReportOutput{MessageID: messageID}, nil
}

// renderMonthlyReport builds the report HTML from the month's figures.
func renderMonthlyReport(transactions []entity.Transaction, now time.Time) string {
	month, year := now.Month(), now.Year()
	totals := metrics.CalculateMonthlyTotals(transactions, month, year)
	rate := metrics.CalculateSavingsRate(totals.Income, totals.Expenses)
	breakdown := metrics.CategoryBreakdown(transactions, month, year)
	anomalies := metrics.DetectAnomalies(transactions, now)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>Finance summary — %s</h1>", now.Format("January 2006")))
	b.WriteString("<ul>")
	b.WriteString(fmt.Sprintf("<li>Income: %s</li>", totals.Income.StringFixed(2)))
	b.WriteString(fmt.Sprintf("<li>Expenses: %s</li>", totals.Expenses.StringFixed(2)))
	b.WriteString(fmt.Sprintf("<li>Balance: %s</li>", totals.Balance().StringFixed(2)))
	b.WriteString(fmt.Sprintf("<li>Savings rate: %s%%</li>", rate.StringFixed(1)))
	b.WriteString("</ul>")

	if len(breakdown) > 0 {
		b.WriteString("<h2>Top spending categories</h2><ol>")
		for i, c := range breakdown {
			if i == 5 {
				break
			}
			b.WriteString(fmt.Sprintf("<li>%s: %s</li>", c.Category, c.Amount.StringFixed(2)))
		}
		b.WriteString("</ol>")
	}

	if len(anomalies) > 0 {
		b.WriteString("<h2>Unusual spending</h2><ul>")
		for _, a := range anomalies {
			b.WriteString(fmt.Sprintf("<li>%s: %s vs %s last month (%s%%)</li>",
				a.Category,
				a.CurrentAmount.StringFixed(2),
				a.LastMonthAmount.StringFixed(2),
				a.ChangePercent,
			))
		}
		b.WriteString("</ul>")
	}

	return b.String()
}
