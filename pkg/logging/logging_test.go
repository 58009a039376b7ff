package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/odvcencio/kakeibo/pkg/money"
	"github.com/odvcencio/kakeibo/pkg/paths"
)

func TestNewWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "test", slog.LevelDebug)

	l.RecordAdded("single", "01J0TEST", money.Cents(1250))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["component"] != "test" {
		t.Errorf("component = %v, want test", entry["component"])
	}
	if entry["system"] != "kakeibo" {
		t.Errorf("system = %v, want kakeibo", entry["system"])
	}
	if entry["kind"] != "single" {
		t.Errorf("kind = %v, want single", entry["kind"])
	}
	if entry["amount_cents"] != float64(1250) {
		t.Errorf("amount_cents = %v, want 1250", entry["amount_cents"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "test", slog.LevelInfo)

	l.EditorClosed(true) // debug level

	if buf.Len() != 0 {
		t.Errorf("debug entry should be filtered at info level, got %s", buf.String())
	}

	l.LedgerSaved("/tmp/x", 3)
	if buf.Len() == 0 {
		t.Error("info entry should pass at info level")
	}
}

func TestWithCommandAddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, "test", slog.LevelInfo).WithCommand("status")

	l.LedgerLoaded("/tmp/x", 7)

	if !strings.Contains(buf.String(), `"command":"status"`) {
		t.Errorf("expected command field, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewWritesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvLogDir, dir)

	l, err := New("test", slog.LevelInfo)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.LedgerLoaded("/tmp/x", 1)
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "kakeibo.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "ledger loaded") {
		t.Errorf("log file missing entry, got %s", data)
	}
}

func TestDiscardDropsOutput(t *testing.T) {
	l := Discard()
	l.LedgerLoaded("/tmp/x", 1) // must not panic
	if err := l.Close(); err != nil {
		t.Errorf("Close on discard logger: %v", err)
	}
}
