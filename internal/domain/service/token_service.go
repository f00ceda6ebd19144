package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token has a bad signature, an unexpected algorithm or has expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the custom claims for the session tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a session token whose subject is email.
	GenerateToken(email string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured lifetime of issued tokens.
	GetTokenDuration() time.Duration
}
