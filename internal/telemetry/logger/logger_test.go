package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("server started", "addr", "127.0.0.1:5000")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "server started" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["addr"] != "127.0.0.1:5000" {
		t.Fatalf("addr = %v", entry["addr"])
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line leaked through warn level: %s", buf.String())
	}

	l.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("warn line suppressed")
	}

	// Level is adjustable at runtime.
	SetLevel("debug")
	defer SetLevel("warn")
	buf.Reset()
	l.Debug("now visible")
	if buf.Len() == 0 {
		t.Fatal("debug line suppressed after SetLevel(debug)")
	}
	if GetLevel() != "debug" {
		t.Fatalf("GetLevel = %q", GetLevel())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	l.With("component", "httpserver").Info("listening")

	if !strings.Contains(buf.String(), `"component":"httpserver"`) {
		t.Fatalf("missing With attr: %s", buf.String())
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "text", Output: &buf})

	l.Info("hello")

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("text format produced JSON: %s", buf.String())
	}
}
