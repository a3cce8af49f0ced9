package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yndnr/todovault-go/internal/core/domain"
	"github.com/yndnr/todovault-go/internal/storage/memory"
)

func newTestTodoService() *TodoService {
	return NewTodoService(memory.NewTodoStore())
}

func TestCreateTodoNormalizesText(t *testing.T) {
	svc := newTestTodoService()
	ctx := context.Background()

	resp, err := svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: "  buy milk  "})
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if resp.Todo.Text != "buy milk" {
		t.Fatalf("Text = %q, want trimmed", resp.Todo.Text)
	}
	if resp.Todo.Completed {
		t.Fatal("new todo should start incomplete")
	}
}

func TestCreateTodoRejectsInvalidText(t *testing.T) {
	svc := newTestTodoService()
	ctx := context.Background()

	if _, err := svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: "   "}); !errors.Is(err, domain.ErrTextRequired) {
		t.Fatalf("whitespace text err = %v, want ErrTextRequired", err)
	}

	long := strings.Repeat("x", domain.MaxTextLength+1)
	if _, err := svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: long}); !errors.Is(err, domain.ErrTextTooLong) {
		t.Fatalf("long text err = %v, want ErrTextTooLong", err)
	}

	// Exactly at the limit is fine.
	exact := strings.Repeat("y", domain.MaxTextLength)
	if _, err := svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: exact}); err != nil {
		t.Fatalf("exact-length text err = %v", err)
	}
}

func TestListTodosScopedToOwner(t *testing.T) {
	svc := newTestTodoService()
	ctx := context.Background()

	svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: "mine"})
	svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 2, Text: "theirs"})

	resp, err := svc.ListTodos(ctx, &ListTodosRequest{OwnerID: 1})
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(resp.Todos) != 1 || resp.Todos[0].Text != "mine" {
		t.Fatalf("todos = %+v", resp.Todos)
	}
}

func TestUpdateTodo(t *testing.T) {
	svc := newTestTodoService()
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: "original"})

	t.Run("toggle completed", func(t *testing.T) {
		done := true
		resp, err := svc.UpdateTodo(ctx, &UpdateTodoRequest{OwnerID: 1, ID: created.Todo.ID, Completed: &done})
		if err != nil {
			t.Fatalf("UpdateTodo: %v", err)
		}
		if !resp.Todo.Completed || resp.Todo.Text != "original" {
			t.Fatalf("todo = %+v", resp.Todo)
		}
	})

	t.Run("update text trims", func(t *testing.T) {
		text := "  renamed  "
		resp, err := svc.UpdateTodo(ctx, &UpdateTodoRequest{OwnerID: 1, ID: created.Todo.ID, Text: &text})
		if err != nil {
			t.Fatalf("UpdateTodo: %v", err)
		}
		if resp.Todo.Text != "renamed" {
			t.Fatalf("Text = %q", resp.Todo.Text)
		}
	})

	t.Run("invalid replacement text", func(t *testing.T) {
		empty := "   "
		if _, err := svc.UpdateTodo(ctx, &UpdateTodoRequest{OwnerID: 1, ID: created.Todo.ID, Text: &empty}); !errors.Is(err, domain.ErrTextRequired) {
			t.Fatalf("err = %v, want ErrTextRequired", err)
		}
	})

	t.Run("other owner's id is a miss", func(t *testing.T) {
		done := true
		if _, err := svc.UpdateTodo(ctx, &UpdateTodoRequest{OwnerID: 2, ID: created.Todo.ID, Completed: &done}); !errors.Is(err, domain.ErrTodoNotFound) {
			t.Fatalf("err = %v, want ErrTodoNotFound", err)
		}
	})
}

func TestDeleteTodo(t *testing.T) {
	svc := newTestTodoService()
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, &CreateTodoRequest{OwnerID: 1, Text: "doomed"})

	if _, err := svc.DeleteTodo(ctx, &DeleteTodoRequest{OwnerID: 2, ID: created.Todo.ID}); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("cross-owner delete err = %v, want ErrTodoNotFound", err)
	}

	resp, err := svc.DeleteTodo(ctx, &DeleteTodoRequest{OwnerID: 1, ID: created.Todo.ID})
	if err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}
	if resp.Todo.Text != "doomed" {
		t.Fatalf("removed = %+v", resp.Todo)
	}

	if _, err := svc.DeleteTodo(ctx, &DeleteTodoRequest{OwnerID: 1, ID: created.Todo.ID}); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("second delete err = %v, want ErrTodoNotFound", err)
	}
}
