package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", nil)
	l.Error("error message", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "warn message") {
		t.Errorf("first line = %q, want warn message", lines[0])
	}
	if !strings.Contains(lines[1], "boom") {
		t.Errorf("second line = %q, want error detail", lines[1])
	}
}

func TestLogger_StructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("feed collected", Fields{"city": "tokyo", "spots": 3})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("level = %q, want INFO", entry.Level)
	}
	if entry.Fields["city"] != "tokyo" {
		t.Errorf("fields[city] = %v, want tokyo", entry.Fields["city"])
	}
	if entry.Timestamp == "" {
		t.Error("timestamp missing")
	}
}
