package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "todoapi/internal/delivery/context"
	"todoapi/internal/domain/entity"
	domainerrors "todoapi/internal/domain/errors"
	"todoapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// todoRequest is the client-settable part of a todo. Any owner field a client
// sends simply has nowhere to land.
type todoRequest struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

type todoResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
	UserID      uint   `json:"userId"`
}

func toTodoResponse(todo *entity.Todo) todoResponse {
	return todoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		IsCompleted: todo.IsCompleted,
		UserID:      todo.UserID,
	}
}

// TodoHandler holds dependencies for the todo CRUD handlers. All routes sit
// behind the auth middleware, so the caller id is always present on the
// context by the time these run.
type TodoHandler struct {
	uc     usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler, injected by Fx.
func NewTodoHandler(uc usecase.TodoUsecase, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		uc:     uc,
		logger: logger,
	}
}

// todoID parses the :id path parameter. A non-numeric id cannot name any
// todo, so it reports not-found rather than a distinct validation error.
func todoID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrTodoNotFound.WrapMessage("invalid todo id")
	}

	return uint(id), nil
}

// List returns all todos owned by the caller.
func (h *TodoHandler) List(c echo.Context) error {
	ownerID, ok := deliverycontext.CallerID(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("caller identity missing")
	}

	todos, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]todoResponse, 0, len(todos))
	for _, todo := range todos {
		resp = append(resp, toTodoResponse(todo))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a single owned todo.
func (h *TodoHandler) Get(c echo.Context) error {
	ownerID, ok := deliverycontext.CallerID(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("caller identity missing")
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.uc.Get(c.Request().Context(), id, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Create persists a new todo owned by the caller and returns it with a
// Location reference.
func (h *TodoHandler) Create(c echo.Context) error {
	ownerID, ok := deliverycontext.CallerID(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("caller identity missing")
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid todo input")
	}

	todo, err := h.uc.Create(c.Request().Context(), ownerID, &usecase.TodoInput{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/todos/%d", todo.ID))

	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Update overwrites the title and completion flag of an owned todo.
func (h *TodoHandler) Update(c echo.Context) error {
	ownerID, ok := deliverycontext.CallerID(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("caller identity missing")
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid todo input")
	}

	todo, err := h.uc.Update(c.Request().Context(), id, ownerID, &usecase.TodoInput{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete removes an owned todo.
func (h *TodoHandler) Delete(c echo.Context) error {
	ownerID, ok := deliverycontext.CallerID(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("caller identity missing")
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, ownerID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
