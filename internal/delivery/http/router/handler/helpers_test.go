package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/delivery/http/validator"
	"todoapi/internal/domain/entity"
	"todoapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newJSONContext builds an echo context for a JSON request, with the request
// validator installed like the real server has.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// asCaller marks the context as authenticated, the way the auth middleware
// does after validating a token.
func asCaller(c echo.Context, userID uint, username string) {
	c.Set(deliverycontext.KeyUserID, userID)
	c.Set(deliverycontext.KeyUsername, username)
}

// mockAuthUsecase is a testify mock for usecase.AuthUsecase.
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.RegisterOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out := args.Get(0); out != nil {
		return out.(*usecase.LoginOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

// mockTodoUsecase is a testify mock for usecase.TodoUsecase.
type mockTodoUsecase struct {
	mock.Mock
}

func (m *mockTodoUsecase) List(ctx context.Context, ownerID uint) ([]*entity.Todo, error) {
	args := m.Called(ctx, ownerID)
	if todos := args.Get(0); todos != nil {
		return todos.([]*entity.Todo), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTodoUsecase) Get(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	if todo := args.Get(0); todo != nil {
		return todo.(*entity.Todo), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTodoUsecase) Create(ctx context.Context, ownerID uint, input *usecase.TodoInput) (*entity.Todo, error) {
	args := m.Called(ctx, ownerID, input)
	if todo := args.Get(0); todo != nil {
		return todo.(*entity.Todo), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTodoUsecase) Update(ctx context.Context, id, ownerID uint, input *usecase.TodoInput) (*entity.Todo, error) {
	args := m.Called(ctx, id, ownerID, input)
	if todo := args.Get(0); todo != nil {
		return todo.(*entity.Todo), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTodoUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}
