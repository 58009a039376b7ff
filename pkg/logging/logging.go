// Package logging provides the structured logger for kakeibo
// commands. Log output goes to a file under paths.LogsDir, never to
// stdout, which belongs to the rendered reports and the editor.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/kakeibo/pkg/money"
	"github.com/odvcencio/kakeibo/pkg/paths"
)

// Logger is a structured logger for kakeibo components
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New opens the log file and returns a JSON logger writing to it.
func New(component string, level slog.Level) (*Logger, error) {
	dir := paths.LogsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "kakeibo.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	l := NewWriter(f, component, level)
	l.closer = f
	return l, nil
}

// NewWriter creates a JSON logger writing to w.
func NewWriter(w io.Writer, component string, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(w, opts)

	logger := slog.New(handler).With(
		slog.String("component", component),
		slog.String("system", "kakeibo"),
	)

	return &Logger{Logger: logger}
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return NewWriter(io.Discard, "discard", slog.LevelError)
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// ParseLevel maps a config string to a slog level. Unknown strings
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithCommand returns a logger with the subcommand name attached
func (l *Logger) WithCommand(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.String("command", name),
		),
		closer: l.closer,
	}
}

// LedgerLoaded logs a successful ledger load
func (l *Logger) LedgerLoaded(path string, records int) {
	l.Info("ledger loaded",
		slog.String("path", path),
		slog.Int("records", records),
	)
}

// LedgerSaved logs a successful ledger save
func (l *Logger) LedgerSaved(path string, records int) {
	l.Info("ledger saved",
		slog.String("path", path),
		slog.Int("records", records),
	)
}

// RecordAdded logs a new ledger record
func (l *Logger) RecordAdded(kind, id string, amount money.Cents) {
	l.Info("record added",
		slog.String("kind", kind),
		slog.String("id", id),
		slog.Int64("amount_cents", int64(amount)),
	)
}

// EditorClosed logs the outcome of a grid editor session
func (l *Logger) EditorClosed(accepted bool) {
	l.Debug("editor closed",
		slog.Bool("accepted", accepted),
	)
}

// ExportWritten logs a completed export
func (l *Logger) ExportWritten(format, path string, rows int) {
	l.Info("export written",
		slog.String("format", format),
		slog.String("path", path),
		slog.Int("rows", rows),
	)
}
