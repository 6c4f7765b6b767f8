// Package runlog configures the structured logging for one connector run:
// every record goes to an append-only log file and to the console, both with
// identical formatting. The logger is owned by the runtime instance; nothing
// here mutates process-global state.
package runlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultFileName is the durable log sink, created on first write and only
// ever appended to.
const DefaultFileName = "job.log"

// Config is the validated logging configuration for a run.
type Config struct {
	Level slog.Level
	// FilePath overrides the log file location; empty means DefaultFileName
	// in the working directory.
	FilePath string
}

// ParseLevel maps a connector log level name onto a slog level. Accepted
// names follow the run CLI contract: notset, debug, info, warning, error,
// critical.
func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "notset", "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "critical":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", raw)
	}
}

// Logger is the per-run logging context. Close releases the file sink.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
	file  *os.File
}

// New opens the log file in append mode and builds a logger writing
// identically formatted records to the file and to console.
func New(cfg Config, console io.Writer) (*Logger, error) {
	path := cfg.FilePath
	if path == "" {
		path = DefaultFileName
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if console == nil {
		console = os.Stderr
	}

	level := &slog.LevelVar{}
	level.Set(cfg.Level)
	handler := slog.NewTextHandler(io.MultiWriter(file, console), &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler),
		level:  level,
		file:   file,
	}, nil
}

// SetLevel retargets the minimum severity mid-run. Used when the resolved
// configuration carries a log_level and no explicit flag was given.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Path reports where the durable sink lives.
func (l *Logger) Path() string {
	return l.file.Name()
}

// Close releases the file sink.
func (l *Logger) Close() error {
	return l.file.Close()
}
