package router

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapi/config"
	"todoapi/internal/delivery/http/middleware"
	"todoapi/internal/delivery/http/router/handler"
	"todoapi/internal/delivery/http/validator"
	"todoapi/internal/infra/auth"
	"todoapi/internal/infra/persistence/model"
	"todoapi/internal/infra/persistence/postgres"
	"todoapi/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer assembles the whole stack the way main does, against an
// in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, or each pooled conn gets its own empty in-memory DB.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.TodoModel{}))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.JWT.Secret = "integration-test-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := postgres.NewUserRepository(db)
	todos := postgres.NewTodoRepository(db)
	hasher := auth.NewBcryptHasherWithCost(4)

	authUC := impl.NewAuthService(users, hasher, tokenSvc, log)
	todoUC := impl.NewTodoService(todos, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(log).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, log),
		TodoHandler:    handler.NewTodoHandler(todoUC, log),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func register(t *testing.T, e *echo.Echo, username, email, password string) {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func login(t *testing.T, e *echo.Echo, username, password string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	return body.Token
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestIntegration_RegisterDuplicate(t *testing.T) {
	e := newTestServer(t)

	register(t, e, "alice", "a@x.com", "secret")

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"other@x.com","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USERNAME_TAKEN", errorCode(t, rec))

	rec = doJSON(e, http.MethodPost, "/auth/register", "",
		`{"username":"alice2","email":"a@x.com","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_TAKEN", errorCode(t, rec))
}

func TestIntegration_LoginFailures(t *testing.T) {
	e := newTestServer(t)
	register(t, e, "alice", "a@x.com", "secret")

	rec := doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))

	rec = doJSON(e, http.MethodPost, "/auth/login", "",
		`{"username":"ghost","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
}

func TestIntegration_TodoLifecycle(t *testing.T) {
	e := newTestServer(t)
	register(t, e, "alice", "a@x.com", "secret")
	token := login(t, e, "alice", "secret")

	// Fresh account starts with an empty list.
	rec := doJSON(e, http.MethodGet, "/todos", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Create.
	rec = doJSON(e, http.MethodPost, "/todos", token, `{"title":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/todos/1", rec.Header().Get(echo.HeaderLocation))
	assert.JSONEq(t, `{"id":1,"title":"buy milk","isCompleted":false,"userId":1}`, rec.Body.String())

	// Read it back.
	rec = doJSON(e, http.MethodGet, "/todos/1", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","isCompleted":false,"userId":1}`, rec.Body.String())

	// Complete it.
	rec = doJSON(e, http.MethodPut, "/todos/1", token, `{"title":"buy milk","isCompleted":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"title":"buy milk","isCompleted":true,"userId":1}`, rec.Body.String())

	// Delete it.
	rec = doJSON(e, http.MethodDelete, "/todos/1", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Gone.
	rec = doJSON(e, http.MethodGet, "/todos/1", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TODO_NOT_FOUND", errorCode(t, rec))
}

func TestIntegration_OwnershipIsolation(t *testing.T) {
	e := newTestServer(t)
	register(t, e, "alice", "a@x.com", "secret")
	register(t, e, "bob", "b@x.com", "secret")
	aliceToken := login(t, e, "alice", "secret")
	bobToken := login(t, e, "bob", "secret")

	rec := doJSON(e, http.MethodPost, "/todos", aliceToken, `{"title":"alice only"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	target := fmt.Sprintf("/todos/%d", created.ID)

	// Bob cannot see, change, or delete Alice's todo; every path reports 404.
	rec = doJSON(e, http.MethodGet, target, bobToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TODO_NOT_FOUND", errorCode(t, rec))

	rec = doJSON(e, http.MethodPut, target, bobToken, `{"title":"hijacked","isCompleted":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodDelete, target, bobToken, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Bob's list stays empty; Alice's todo is untouched.
	rec = doJSON(e, http.MethodGet, "/todos", bobToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, target, aliceToken, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Title       string `json:"title"`
		IsCompleted bool   `json:"isCompleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alice only", got.Title)
	assert.False(t, got.IsCompleted)
}

func TestIntegration_TokenRequired(t *testing.T) {
	e := newTestServer(t)

	for _, tc := range []struct {
		name  string
		token string
	}{
		{name: "missing", token: ""},
		{name: "garbage", token: "not.a.token"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodGet, "/todos", tc.token, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
		})
	}
}

func TestIntegration_HealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
