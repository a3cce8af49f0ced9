package domain

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain text", input: "buy milk", want: "buy milk"},
		{name: "trims surrounding whitespace", input: "  hi  ", want: "hi"},
		{name: "empty", input: "", wantErr: ErrTextRequired},
		{name: "whitespace only", input: "   ", wantErr: ErrTextRequired},
		{name: "exactly max length", input: strings.Repeat("a", MaxTextLength), want: strings.Repeat("a", MaxTextLength)},
		{name: "one over max length", input: strings.Repeat("a", MaxTextLength+1), wantErr: ErrTextTooLong},
		{name: "trimming brings it under the limit", input: "  " + strings.Repeat("a", MaxTextLength) + "  ", want: strings.Repeat("a", MaxTextLength)},
		{name: "multibyte runes count as one character", input: strings.Repeat("ä", MaxTextLength), want: strings.Repeat("ä", MaxTextLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeText(tt.input)
			if tt.wantErr != nil {
				if !IsDomainError(err, tt.wantErr.(*DomainError).Code) {
					t.Fatalf("NormalizeText(%q) err = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeText(%q) err = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTodoClone(t *testing.T) {
	todo := &Todo{ID: 1, Text: "original", Completed: false, OwnerID: 7}
	clone := todo.Clone()

	clone.Text = "changed"
	clone.Completed = true

	if todo.Text != "original" || todo.Completed {
		t.Fatalf("Clone mutated the original: %+v", todo)
	}
}

func TestTodoPatchIsEmpty(t *testing.T) {
	if !(TodoPatch{}).IsEmpty() {
		t.Fatal("empty patch reported as non-empty")
	}

	text := "x"
	if (TodoPatch{Text: &text}).IsEmpty() {
		t.Fatal("text patch reported as empty")
	}

	done := true
	if (TodoPatch{Completed: &done}).IsEmpty() {
		t.Fatal("completed patch reported as empty")
	}
}
