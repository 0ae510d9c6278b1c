package middleware

import (
	"strings"

	deliverycontext "todoapi/internal/delivery/context"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the caller's identity from the bearer token before
// any handler or persistence access runs. Every todo route shares this single
// step; a missing, malformed, tampered, or expired token yields the same 401.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WrapMessage("missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WrapMessage("not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token validation failed")
		}

		// Set caller identity on the context for handlers to use.
		c.Set(deliverycontext.KeyUserID, claims.UserID)
		c.Set(deliverycontext.KeyUsername, claims.Username)

		return next(c)
	}
}
