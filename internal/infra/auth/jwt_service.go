// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todoapi/config"
	"todoapi/internal/domain/service"
)

// defaultTokenTTL is the token lifetime used when none is configured.
const defaultTokenTTL = time.Hour * 24 * 7 // 7 days

// jwtService is a concrete implementation of the TokenService interface using
// HMAC-SHA256 signed JWTs. The signing secret is process-wide configuration,
// loaded once at startup; rotation is out of scope.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token carrying the user's identity claims.
func (s *jwtService) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Validate checks the signature and expiry of a token string and extracts its
// claims. It collapses every failure mode into service.ErrInvalidToken so the
// caller cannot distinguish a forged token from an expired one.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	// A signature-valid token without a usable userId claim is still invalid.
	// This guards against forged or legacy tokens.
	if claims.UserID == 0 {
		return nil, service.ErrInvalidToken
	}

	return claims, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
