package usecase

import (
	"context"

	"todoapi/internal/domain/entity"
)

// TodoInput carries the client-settable fields of a todo. The owner is never
// part of the input; it always comes from the authenticated caller.
type TodoInput struct {
	Title       string
	IsCompleted bool
}

// TodoUsecase defines the interface for todo business operations. Every
// operation is scoped to the calling user's id; a todo belonging to another
// user behaves exactly like one that does not exist.
type TodoUsecase interface {
	List(ctx context.Context, ownerID uint) ([]*entity.Todo, error)
	Get(ctx context.Context, id, ownerID uint) (*entity.Todo, error)
	Create(ctx context.Context, ownerID uint, input *TodoInput) (*entity.Todo, error)
	Update(ctx context.Context, id, ownerID uint, input *TodoInput) (*entity.Todo, error)
	Delete(ctx context.Context, id, ownerID uint) error
}
