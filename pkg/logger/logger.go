// Package logger provides structured file logging for the hook.
//
// Stdout and stderr belong to the hook wire protocol, so the logger only
// ever writes to a file (or nowhere at all).
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// LogFilePermissions is the file mode for log files (owner read/write only).
	LogFilePermissions = 0o600

	// LogDirPermissions is the file mode for the log directory.
	LogDirPermissions = 0o700
)

// Logger is the structured logging interface used throughout the hook.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// FileLogger implements Logger on top of slog with a line handler.
type FileLogger struct {
	s *slog.Logger
}

// NewFileLogger creates a FileLogger appending to the given path, creating
// the parent directory when missing. Errors are always logged; debugMode
// additionally enables info, traceMode enables debug.
func NewFileLogger(path string, debugMode, traceMode bool) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), LogDirPermissions); err != nil {
		return nil, err
	}

	//nolint:gosec // log path comes from config/home, not tool input
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, err
	}

	return &FileLogger{
		s: slog.New(NewLineHandler(file, levelFor(debugMode, traceMode))),
	}, nil
}

// NewWriterLogger creates a FileLogger over an existing handler. Intended
// for tests.
func NewWriterLogger(handler *LineHandler) *FileLogger {
	return &FileLogger{s: slog.New(handler)}
}

// levelFor maps the mode flags to a slog level.
func levelFor(debugMode, traceMode bool) slog.Level {
	switch {
	case traceMode:
		return slog.LevelDebug
	case debugMode:
		return slog.LevelInfo
	default:
		return slog.LevelError
	}
}

// Debug logs debug-level messages.
func (l *FileLogger) Debug(msg string, keysAndValues ...any) {
	l.s.Debug(msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *FileLogger) Info(msg string, keysAndValues ...any) {
	l.s.Info(msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *FileLogger) Error(msg string, keysAndValues ...any) {
	l.s.Error(msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With returns the interface for chaining
func (l *FileLogger) With(keysAndValues ...any) Logger {
	return &FileLogger{s: l.s.With(keysAndValues...)}
}

// NoOpLogger is a logger that discards everything. It doubles as the
// fallback when the log file cannot be opened, so a logging failure never
// disturbs the wire protocol.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With returns the interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}
