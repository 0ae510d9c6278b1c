package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapi/config"
	deliverycontext "todoapi/internal/delivery/context"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/service"
	"todoapi/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func newAuthTestTokenService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := newAuthTestTokenService(t)
	token, err := tokenSvc.Issue(7, "alice")
	require.NoError(t, err)

	var called bool
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		called = true
		assert.Equal(t, uint(7), c.Get(deliverycontext.KeyUserID))
		assert.Equal(t, "alice", c.Get(deliverycontext.KeyUsername))

		return nil
	})

	c := newAuthTestContext(t, "Bearer "+token)
	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler := NewAuthMiddleware(newAuthTestTokenService(t)).Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a token")

		return nil
	})

	err := handler(newAuthTestContext(t, ""))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	handler := NewAuthMiddleware(newAuthTestTokenService(t)).Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without a bearer token")

		return nil
	})

	err := handler(newAuthTestContext(t, "Basic dXNlcjpwYXNz"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	handler := NewAuthMiddleware(newAuthTestTokenService(t)).Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with an invalid token")

		return nil
	})

	err := handler(newAuthTestContext(t, "Bearer not.a.token"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_TokenFromOtherSecret(t *testing.T) {
	otherCfg := &config.Config{}
	otherCfg.JWT.Secret = "some-other-secret"
	otherSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherSvc.Issue(7, "alice")
	require.NoError(t, err)

	handler := NewAuthMiddleware(newAuthTestTokenService(t)).Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run with a foreign token")

		return nil
	})

	err = handler(newAuthTestContext(t, "Bearer "+token))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
