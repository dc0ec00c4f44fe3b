// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Persistence errors. Deserialization failures are deliberately absent: a
// corrupt collection document is a recoverable condition handled by falling
// back to the default value, never an error surfaced to callers.
var (
	// ErrStoreUnavailable is returned when the key-value backend cannot be reached.
	ErrStoreUnavailable = errors.New("key-value store unavailable")
)

// Session errors for the optional access lock.
var (
	// ErrInvalidPasscode is returned when the supplied passcode does not match.
	ErrInvalidPasscode = errors.New("invalid passcode")

	// ErrAccessLockDisabled is returned when a session is requested but no passcode is configured.
	ErrAccessLockDisabled = errors.New("access lock is not enabled")

	// ErrInvalidToken is returned when a session token is missing, malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Report errors for the on-demand email summary.
var (
	// ErrReportingNotConfigured is returned when no email API key or recipient is configured.
	ErrReportingNotConfigured = errors.New("email reporting is not configured")
)

// SessionErrorCode defines error codes for session errors.
type SessionErrorCode string

const (
	ErrCodeInvalidPasscode    SessionErrorCode = "SES-010001"
	ErrCodeAccessLockDisabled SessionErrorCode = "SES-010002"
	ErrCodeInvalidToken       SessionErrorCode = "SES-010003"
	ErrCodeRateLimited        SessionErrorCode = "SES-010004"
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeReportingNotConfigured ReportErrorCode = "RPT-010001"
	ErrCodeReportSendFailed       ReportErrorCode = "RPT-020001"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
