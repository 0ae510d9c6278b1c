package impl

import (
	"context"
	"log/slog"

	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/usecase"

	"github.com/pkg/errors"
)

// todoService implements the TodoUsecase interface.
type todoService struct {
	todos  repository.TodoRepository
	logger *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(todos repository.TodoRepository, logger *slog.Logger) usecase.TodoUsecase {
	return &todoService{
		todos:  todos,
		logger: logger,
	}
}

// List returns all todos owned by the caller.
func (srv *todoService) List(ctx context.Context, ownerID uint) ([]*entity.Todo, error) {
	todos, err := srv.todos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	return todos, nil
}

// Get returns a single owned todo. A todo owned by another user is reported
// as not found, never as forbidden.
func (srv *todoService) Get(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	todo, err := srv.todos.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound.WrapMessage("get todo failed")
		}

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return todo, nil
}

// Create persists a new todo. The owner is forced to the caller's id; any
// owner value a client might have sent never reaches this layer.
func (srv *todoService) Create(ctx context.Context, ownerID uint, input *usecase.TodoInput) (*entity.Todo, error) {
	todo := &entity.Todo{
		Title:       input.Title,
		IsCompleted: input.IsCompleted,
		UserID:      ownerID,
	}

	if err := srv.todos.Create(ctx, todo); err != nil {
		srv.logger.Error("Failed to create todo", "error", err, "userID", ownerID)

		return nil, errors.Wrap(err, "failed to create todo")
	}

	srv.logger.Debug("Todo created", "todoID", todo.ID, "userID", ownerID)

	return todo, nil
}

// Update overwrites the title and completion flag of an owned todo and
// returns the updated record. Owner and id are immutable.
func (srv *todoService) Update(ctx context.Context, id, ownerID uint, input *usecase.TodoInput) (*entity.Todo, error) {
	todo := &entity.Todo{
		ID:          id,
		Title:       input.Title,
		IsCompleted: input.IsCompleted,
		UserID:      ownerID,
	}

	if err := srv.todos.Update(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, domainerrors.ErrTodoNotFound.WrapMessage("update todo failed")
		}

		return nil, errors.Wrap(err, "failed to update todo")
	}

	return todo, nil
}

// Delete removes an owned todo.
func (srv *todoService) Delete(ctx context.Context, id, ownerID uint) error {
	if err := srv.todos.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return domainerrors.ErrTodoNotFound.WrapMessage("delete todo failed")
		}

		return errors.Wrap(err, "failed to delete todo")
	}

	srv.logger.Debug("Todo deleted", "todoID", id, "userID", ownerID)

	return nil
}
