// Package session contains the optional access-lock use case: exchanging the
// dashboard passcode for a session token.
package session

import (
	"context"
	"log/slog"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// CreateSessionInput carries the plain passcode.
type CreateSessionInput struct {
	Passcode string
}

// CreateSessionOutput carries the issued token.
type CreateSessionOutput struct {
	Token string
}

// CreateSessionUseCase verifies the passcode and issues a session token.
// With no passcode hash configured the access lock is disabled and sessions
// cannot be created.
type CreateSessionUseCase struct {
	passcodeHash string
	passcodes    adapter.PasscodeService
	tokens       adapter.TokenService
}

// NewCreateSessionUseCase creates a new CreateSessionUseCase instance.
func NewCreateSessionUseCase(
	passcodeHash string,
	passcodes adapter.PasscodeService,
	tokens adapter.TokenService,
) *CreateSessionUseCase {
	return &CreateSessionUseCase{
		passcodeHash: passcodeHash,
		passcodes:    passcodes,
		tokens:       tokens,
	}
}

// Execute exchanges the passcode for a token.
func (uc *CreateSessionUseCase) Execute(_ context.Context, input CreateSessionInput) (*CreateSessionOutput, error) {
	if uc.passcodeHash == "" {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeAccessLockDisabled,
			"access lock is not enabled",
			domainerror.ErrAccessLockDisabled,
		)
	}

	if err := uc.passcodes.VerifyPasscode(uc.passcodeHash, input.Passcode); err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidPasscode,
			"invalid passcode",
			domainerror.ErrInvalidPasscode,
		)
	}

	token, err := uc.tokens.GenerateToken()
	if err != nil {
		return nil, err
	}

	slog.Info("Session created")
	return &CreateSessionOutput{Token: token}, nil
}
