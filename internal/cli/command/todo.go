package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List your todos",
		Action:  listAction,
	}
}

// AddCommand returns the add command.
func AddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new todo",
		ArgsUsage: "<text>",
		Action:    addAction,
	}
}

// DoneCommand returns the done command.
func DoneCommand() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a todo as completed",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "undo",
				Usage: "Mark the todo as not completed instead",
			},
		},
		Action: doneAction,
	}
}

// EditCommand returns the edit command.
func EditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Replace the text of a todo",
		ArgsUsage: "<id> <text>",
		Action:    editAction,
	}
}

// RemoveCommand returns the rm command.
func RemoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"remove"},
		Usage:     "Delete a todo",
		ArgsUsage: "<id>",
		Action:    removeAction,
	}
}

func listAction(c *cli.Context) error {
	if err := requireToken(c); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	todos, err := newClient(c).ListTodos(ctx)
	if err != nil {
		return fmt.Errorf("list todos: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	return formatter.Todos(todos)
}

func addAction(c *cli.Context) error {
	if err := requireToken(c); err != nil {
		return err
	}
	if c.NArg() < 1 {
		return fmt.Errorf("usage: todovault-cli add <text>")
	}
	text := strings.Join(c.Args().Slice(), " ")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	todo, err := newClient(c).CreateTodo(ctx, text)
	if err != nil {
		return fmt.Errorf("add todo: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	return formatter.Todo(todo)
}

func doneAction(c *cli.Context) error {
	if err := requireToken(c); err != nil {
		return err
	}
	id, err := parseIDArg(c)
	if err != nil {
		return err
	}
	completed := !c.Bool("undo")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	todo, err := newClient(c).UpdateTodo(ctx, id, nil, &completed)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	return formatter.Todo(todo)
}

func editAction(c *cli.Context) error {
	if err := requireToken(c); err != nil {
		return err
	}
	if c.NArg() < 2 {
		return fmt.Errorf("usage: todovault-cli edit <id> <text>")
	}
	id, err := parseIDArg(c)
	if err != nil {
		return err
	}
	text := strings.Join(c.Args().Slice()[1:], " ")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	todo, err := newClient(c).UpdateTodo(ctx, id, &text, nil)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	return formatter.Todo(todo)
}

func removeAction(c *cli.Context) error {
	if err := requireToken(c); err != nil {
		return err
	}
	id, err := parseIDArg(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	todo, err := newClient(c).DeleteTodo(ctx, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	formatter, err := newFormatter(c)
	if err != nil {
		return err
	}
	if err := formatter.Message(fmt.Sprintf("deleted todo %d", todo.ID)); err != nil {
		return err
	}
	return nil
}

// parseIDArg reads the first positional argument as a todo id.
func parseIDArg(c *cli.Context) (int64, error) {
	if c.NArg() < 1 {
		return 0, fmt.Errorf("missing todo id")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", c.Args().First())
	}
	return id, nil
}
