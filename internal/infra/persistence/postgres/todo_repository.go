package postgres

import (
	"context"

	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/domain/repository"
	"todoapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the repository.TodoRepository interface using GORM.
// All owner-scoped statements put the todo id and the owner id in the same
// WHERE clause; another user's row is never fetched, even transiently.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{
		db: db,
	}
}

// Create persists a new todo for its owner.
func (repo *todoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID

	return nil
}

// ListByOwner retrieves all todos owned by the given user.
// No ordering is guaranteed.
func (repo *todoRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*entity.Todo, error) {
	var todoModels []*model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&todoModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list todos")
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		todos = append(todos, toTodoDomain(todoM))
	}

	return todos, nil
}

// FindByIDAndOwner retrieves a todo by id, scoped to its owner.
func (repo *todoRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Todo, error) {
	var todoM model.TodoModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find todo")
	}

	return toTodoDomain(&todoM), nil
}

// Update overwrites the title and completion flag of an owned todo.
// Only those two columns are written; id and owner stay immutable.
func (repo *todoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Where("id = ? AND user_id = ?", todo.ID, todo.UserID).
		Select("title", "is_completed").
		Updates(map[string]any{
			"title":        todo.Title,
			"is_completed": todo.IsCompleted,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// Delete removes a todo scoped to its owner.
func (repo *todoRepository) Delete(ctx context.Context, id, ownerID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TodoModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete todo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTodoDomain converts a GORM TodoModel to a domain Todo entity.
func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	return &entity.Todo{
		ID:          data.ID,
		Title:       data.Title,
		IsCompleted: data.IsCompleted,
		UserID:      data.UserID,
	}
}

// fromTodoDomain converts a domain Todo entity to a GORM TodoModel for persistence.
func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	return &model.TodoModel{
		ID:          data.ID,
		Title:       data.Title,
		IsCompleted: data.IsCompleted,
		UserID:      data.UserID,
	}
}
