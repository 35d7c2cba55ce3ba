// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.panid.dev/panid/internal/core/ports"
)

// Logger implements ports.Logger using log/slog with a text handler on
// stderr.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	out    io.Writer
	level  *slog.LevelVar
}

// New creates a new Logger. The default level is Warn so a normal run
// stays quiet; Verbose lowers it to Info.
func New() *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	out := io.Writer(os.Stderr)
	return &Logger{
		logger: slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})),
		out:    out,
		level:  level,
	}
}

// SetVerbose toggles between the quiet default (Warn) and Info.
func (l *Logger) SetVerbose(verbose bool) {
	if verbose {
		l.level.Set(slog.LevelInfo)
	} else {
		l.level.Set(slog.LevelWarn)
	}
}

// SetOutput replaces the logger's output destination. Used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

var _ ports.Logger = (*Logger)(nil)
