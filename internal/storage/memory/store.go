package memory

import (
	"context"
	"sync"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// TodoStore keeps every todo in insertion order behind a single lock.
//
// Identifiers are assigned from a monotonically increasing counter and
// are never reused, even after the item they identified is deleted.
type TodoStore struct {
	mu     sync.Mutex
	todos  []*domain.Todo
	nextID int64
}

// NewTodoStore creates an empty todo store. The first created item
// receives id 1.
func NewTodoStore() *TodoStore {
	return &TodoStore{nextID: 1}
}

// Seed loads pre-built todos into an empty store and advances the id
// counter past the highest seeded id.
func (s *TodoStore) Seed(todos []*domain.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, todo := range todos {
		clone := todo.Clone()
		s.todos = append(s.todos, clone)
		if clone.ID >= s.nextID {
			s.nextID = clone.ID + 1
		}
	}
}

// ListByOwner returns clones of the owner's todos in insertion order.
// An owner with no todos gets an empty, non-nil slice.
func (s *TodoStore) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*domain.Todo, 0)
	for _, todo := range s.todos {
		if todo.OwnerID == ownerID {
			results = append(results, todo.Clone())
		}
	}

	return results, nil
}

// Create appends a new todo for the owner and assigns it the next id.
// The text is stored as given; validation happens in the service layer.
func (s *TodoStore) Create(_ context.Context, ownerID int64, text string) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := &domain.Todo{
		ID:        s.nextID,
		Text:      text,
		Completed: false,
		OwnerID:   ownerID,
	}
	s.nextID++
	s.todos = append(s.todos, todo)

	return todo.Clone(), nil
}

// Update applies a patch to the owner's todo. A missing id and an id
// owned by someone else are indistinguishable: both return
// domain.ErrTodoNotFound.
func (s *TodoStore) Update(_ context.Context, ownerID, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := s.findLocked(ownerID, id)
	if todo == nil {
		return nil, domain.ErrTodoNotFound
	}

	if patch.Text != nil {
		todo.Text = *patch.Text
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}

	return todo.Clone(), nil
}

// Delete removes the owner's todo and returns the removed item.
// Position of the remaining items is preserved.
func (s *TodoStore) Delete(_ context.Context, ownerID, id int64) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, todo := range s.todos {
		if todo.ID == id && todo.OwnerID == ownerID {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return todo.Clone(), nil
		}
	}

	return nil, domain.ErrTodoNotFound
}

// Count returns the total number of stored todos across all owners.
func (s *TodoStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.todos)
}

// CountByOwner returns the number of todos belonging to one owner.
func (s *TodoStore) CountByOwner(ownerID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, todo := range s.todos {
		if todo.OwnerID == ownerID {
			count++
		}
	}

	return count
}

// findLocked locates a todo by owner and id. Caller must hold s.mu.
func (s *TodoStore) findLocked(ownerID, id int64) *domain.Todo {
	for _, todo := range s.todos {
		if todo.ID == id && todo.OwnerID == ownerID {
			return todo
		}
	}
	return nil
}
