// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// EmailSender sends a single HTML email. Used by the on-demand monthly
// summary report; there is no queue or retry machinery behind it.
type EmailSender interface {
	// IsAvailable reports whether the sender is configured.
	IsAvailable() bool

	// Send delivers the email and returns the provider message id.
	Send(ctx context.Context, to string, subject string, html string) (string, error)
}
