package service

import (
	"context"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// TodoRepository defines the storage interface for todo operations.
// Every call is scoped to an owner; a repository never exposes one
// owner's items to another.
type TodoRepository interface {
	// ListByOwner returns the owner's todos in insertion order.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Todo, error)

	// Create appends a new todo for the owner.
	Create(ctx context.Context, ownerID int64, text string) (*domain.Todo, error)

	// Update applies a patch to the owner's todo.
	Update(ctx context.Context, ownerID, id int64, patch domain.TodoPatch) (*domain.Todo, error)

	// Delete removes the owner's todo and returns the removed item.
	Delete(ctx context.Context, ownerID, id int64) (*domain.Todo, error)
}

// TodoService owns the todo-list operations.
type TodoService struct {
	repo TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// ListTodosRequest contains parameters for listing todos.
type ListTodosRequest struct {
	OwnerID int64
}

// ListTodosResponse contains the owner's todos.
type ListTodosResponse struct {
	Todos []*domain.Todo
}

// ListTodos returns all of the owner's todos in insertion order.
func (s *TodoService) ListTodos(ctx context.Context, req *ListTodosRequest) (*ListTodosResponse, error) {
	todos, err := s.repo.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, domain.ErrInternalServer.WithCause(err)
	}

	return &ListTodosResponse{Todos: todos}, nil
}

// CreateTodoRequest contains parameters for creating a todo.
type CreateTodoRequest struct {
	OwnerID int64
	Text    string
}

// CreateTodoResponse contains the created todo.
type CreateTodoResponse struct {
	Todo *domain.Todo
}

// CreateTodo validates the text and stores a new incomplete todo.
func (s *TodoService) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*CreateTodoResponse, error) {
	text, err := domain.NormalizeText(req.Text)
	if err != nil {
		return nil, err
	}

	todo, err := s.repo.Create(ctx, req.OwnerID, text)
	if err != nil {
		return nil, domain.ErrInternalServer.WithCause(err)
	}

	return &CreateTodoResponse{Todo: todo}, nil
}

// UpdateTodoRequest contains parameters for updating a todo.
// Nil fields are left unchanged.
type UpdateTodoRequest struct {
	OwnerID   int64
	ID        int64
	Text      *string
	Completed *bool
}

// UpdateTodoResponse contains the updated todo.
type UpdateTodoResponse struct {
	Todo *domain.Todo
}

// UpdateTodo applies a partial update to the owner's todo. Text, when
// present, goes through the same validation as creation.
func (s *TodoService) UpdateTodo(ctx context.Context, req *UpdateTodoRequest) (*UpdateTodoResponse, error) {
	patch := domain.TodoPatch{Completed: req.Completed}

	if req.Text != nil {
		text, err := domain.NormalizeText(*req.Text)
		if err != nil {
			return nil, err
		}
		patch.Text = &text
	}

	todo, err := s.repo.Update(ctx, req.OwnerID, req.ID, patch)
	if err != nil {
		return nil, err
	}

	return &UpdateTodoResponse{Todo: todo}, nil
}

// DeleteTodoRequest contains parameters for deleting a todo.
type DeleteTodoRequest struct {
	OwnerID int64
	ID      int64
}

// DeleteTodoResponse contains the removed todo.
type DeleteTodoResponse struct {
	Todo *domain.Todo
}

// DeleteTodo removes the owner's todo and returns the removed item.
func (s *TodoService) DeleteTodo(ctx context.Context, req *DeleteTodoRequest) (*DeleteTodoResponse, error) {
	todo, err := s.repo.Delete(ctx, req.OwnerID, req.ID)
	if err != nil {
		return nil, err
	}

	return &DeleteTodoResponse{Todo: todo}, nil
}
