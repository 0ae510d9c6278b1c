package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single sentinel for every token validation failure:
// bad signature, malformed token, expiry, or unusable claims. Callers must not
// learn which one occurred.
var ErrInvalidToken = errors.New("invalid token")

// Claims defines the identity fields embedded in a session token.
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token carrying the user's identity, expiring
	// after the configured token duration.
	Issue(userID uint, username string) (string, error)

	// Validate verifies a token's signature and expiry and returns its claims.
	// Any failure, including a missing or non-integer userId claim, yields
	// ErrInvalidToken.
	Validate(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
