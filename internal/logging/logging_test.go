package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" ERROR ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_ErrorIncludesStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "INFO")

	logger.Error("boom", "ticket", "ABCD1234")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec["msg"] != "boom" {
		t.Errorf("expected msg=boom, got %v", rec["msg"])
	}
	if rec["ticket"] != "ABCD1234" {
		t.Errorf("expected ticket attr, got %v", rec["ticket"])
	}
	if _, ok := rec["stacktrace"]; !ok {
		t.Error("expected stacktrace on ERROR record")
	}
}

func TestNew_InfoHasNoStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "DEBUG").With("component", "test")

	logger.Info("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if _, ok := rec["stacktrace"]; ok {
		t.Error("did not expect stacktrace on INFO record")
	}
	if rec["component"] != "test" {
		t.Errorf("expected component attr to survive WithAttrs, got %v", rec["component"])
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "WARN")

	logger.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("expected INFO to be filtered at WARN, got %q", buf.String())
	}
}
