// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	apiKey    string
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) adapter.EmailSender {
	return &ResendClient{
		apiKey:    apiKey,
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// IsAvailable checks if the Resend client is properly configured.
func (c *ResendClient) IsAvailable() bool {
	return c.apiKey != "" && c.fromEmail != ""
}

// Send sends an email via Resend and returns the provider message id.
func (c *ResendClient) Send(ctx context.Context, to string, subject string, html string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return resp.Id, nil
}
