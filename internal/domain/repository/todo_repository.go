package repository

import (
	"context"
	"errors"

	"todoapi/internal/domain/entity"
)

// ErrTodoNotFound is returned when a todo does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the standard operations for todo persistence.
// Every owner-scoped lookup or mutation uses both the todo id and the owner id
// in a single query predicate, never an id lookup followed by an ownership check.
type TodoRepository interface {
	// Create persists a new todo and fills in the generated ID.
	Create(ctx context.Context, todo *entity.Todo) error

	// ListByOwner retrieves all todos owned by the given user.
	ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Todo, error)

	// FindByIDAndOwner retrieves a todo by id, scoped to its owner.
	// Returns ErrTodoNotFound when absent or owned by someone else.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error)

	// Update overwrites the title and completion flag of an owned todo.
	// The owner and id are immutable. Returns ErrTodoNotFound when the
	// scoped row does not exist.
	Update(ctx context.Context, todo *entity.Todo) error

	// Delete removes a todo scoped to its owner.
	// Returns ErrTodoNotFound when the scoped row does not exist.
	Delete(ctx context.Context, id, ownerID uint) error
}
