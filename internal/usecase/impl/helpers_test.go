package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"todoapi/internal/domain/entity"
	"todoapi/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserRepository is a testify mock for repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

// mockTodoRepository is a testify mock for repository.TodoRepository.
type mockTodoRepository struct {
	mock.Mock
}

func (m *mockTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *mockTodoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Todo, error) {
	args := m.Called(ctx, ownerID)
	if todos := args.Get(0); todos != nil {
		return todos.([]*entity.Todo), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTodoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	if todo := args.Get(0); todo != nil {
		return todo.(*entity.Todo), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	args := m.Called(ctx, todo)

	return args.Error(0)
}

func (m *mockTodoRepository) Delete(ctx context.Context, id, ownerID uint) error {
	args := m.Called(ctx, id, ownerID)

	return args.Error(0)
}

// mockTokenService is a testify mock for service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uint, username string) (string, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) TokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
