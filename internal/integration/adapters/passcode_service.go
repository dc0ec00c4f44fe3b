package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// bcryptCost is the cost factor for bcrypt hashing.
const bcryptCost = 12

// passcodeService implements the adapter.PasscodeService interface.
type passcodeService struct{}

// NewPasscodeService creates a new passcode service instance.
func NewPasscodeService() adapter.PasscodeService {
	return &passcodeService{}
}

// HashPasscode hashes a plain passcode using bcrypt with cost 12.
func (s *passcodeService) HashPasscode(passcode string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passcode), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPasscode compares a plain passcode with the configured hash.
func (s *passcodeService) VerifyPasscode(hash, passcode string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode))
}
