// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// tokenIssuer identifies tokens minted by this service.
const tokenIssuer = "finance-dashboard"

// tokenService implements the adapter.TokenService interface with HS256
// JWTs. The dashboard is single-user, so tokens carry no subject beyond the
// issuer; possession of a valid token is the whole session.
type tokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, ttl time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken issues a new signed session token.
func (s *tokenService) GenerateToken() (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken verifies the signature, expiry and issuer of a session token.
func (s *tokenService) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
