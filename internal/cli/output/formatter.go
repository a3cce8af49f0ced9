package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/yndnr/todovault-go/internal/core/domain"
)

// Format names a supported output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a format name from the command line.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatTable, FormatJSON:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table or json)", name)
	}
}

// Formatter writes todos and generic values to a stream.
type Formatter struct {
	w      io.Writer
	format Format
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer, format Format) *Formatter {
	return &Formatter{w: w, format: format}
}

// Todos renders a list of todos.
func (f *Formatter) Todos(todos []*domain.Todo) error {
	if f.format == FormatJSON {
		return f.writeJSON(todos)
	}

	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTEXT")
	for _, todo := range todos {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", todo.ID, checkmark(todo.Completed), todo.Text)
	}
	return tw.Flush()
}

// Todo renders a single todo.
func (f *Formatter) Todo(todo *domain.Todo) error {
	if f.format == FormatJSON {
		return f.writeJSON(todo)
	}
	return f.Todos([]*domain.Todo{todo})
}

// Value renders an arbitrary value. Tables fall back to key: value lines.
func (f *Formatter) Value(v any) error {
	if f.format == FormatJSON {
		return f.writeJSON(v)
	}

	switch val := v.(type) {
	case map[string]string:
		tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)
		for _, key := range sortedKeys(val) {
			fmt.Fprintf(tw, "%s:\t%s\n", key, val[key])
		}
		return tw.Flush()
	default:
		_, err := fmt.Fprintln(f.w, v)
		return err
	}
}

// Message writes a plain line in table mode, or a JSON object in json mode.
func (f *Formatter) Message(msg string) error {
	if f.format == FormatJSON {
		return f.writeJSON(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(f.w, msg)
	return err
}

func (f *Formatter) writeJSON(v any) error {
	enc := json.NewEncoder(f.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func checkmark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
