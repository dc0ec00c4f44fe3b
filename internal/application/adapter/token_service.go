// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// TokenService issues and validates the session tokens used by the optional
// single-user access lock.
type TokenService interface {
	// GenerateToken issues a new signed session token.
	GenerateToken() (string, error)

	// ValidateToken verifies the signature and expiry of a session token.
	ValidateToken(token string) error
}

// PasscodeService verifies the dashboard passcode against its stored hash.
type PasscodeService interface {
	// HashPasscode hashes a plain passcode for storage in configuration.
	HashPasscode(passcode string) (string, error)

	// VerifyPasscode compares a plain passcode with the configured hash.
	VerifyPasscode(hash string, passcode string) error
}
