// Package error defines domain-specific errors for the Finance Dashboard application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the store.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalType is returned when the goal type is invalid.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidGoalAmount is returned when a goal amount is negative or malformed.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalType   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalAmount GoalErrorCode = "GOL-010002"
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010004"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
