// Package domain defines the core domain models for TodoVault.
package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxTextLength is the maximum todo text length in characters,
// measured after trimming surrounding whitespace.
const MaxTextLength = 200

// Todo represents a single todo item owned by exactly one user.
type Todo struct {
	// ID is the unique todo identifier. IDs are assigned from a
	// monotonically increasing counter and are never reused, even
	// after deletion.
	ID int64 `json:"id"`

	// Text is the todo body, stored trimmed. 1..MaxTextLength characters.
	Text string `json:"text"`

	// Completed marks the todo as done.
	Completed bool `json:"completed"`

	// OwnerID is the ID of the owning user. Assigned at creation from
	// the authenticated caller; never reassignable.
	OwnerID int64 `json:"owner_id"`
}

// Clone creates a copy of the todo.
func (t *Todo) Clone() *Todo {
	clone := *t
	return &clone
}

// NormalizeText trims the text and validates it against the todo
// text constraints. Returns the trimmed text on success.
func NormalizeText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrTextRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return "", ErrTextTooLong
	}
	return trimmed, nil
}

// TodoPatch describes a partial update to a todo. Nil fields are
// left unchanged by Update.
type TodoPatch struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Text == nil && p.Completed == nil
}
