// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/nannou-org/hotglsl/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error; if
// zerr's API changes, errors gracefully fall back to standard handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu   sync.RWMutex
	log  *slog.Logger
	sink io.Writer
	json bool
}

// New creates a Logger writing colored console output to stderr.
func New() ports.Logger {
	return &Logger{
		log: slog.New(NewConsoleHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
		sink: os.Stderr,
	}
}

// SetOutput redirects log output, keeping the current JSON mode. A nil
// writer falls back to stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.sink = w
	l.rebuild()
}

// SetJSON switches between JSON and console output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.json = enable
	l.rebuild()
}

// rebuild swaps the underlying handler. Callers must hold l.mu.
func (l *Logger) rebuild() {
	w := l.sink
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.json {
		l.log = slog.New(slog.NewJSONHandler(w, opts))
		return
	}
	l.log = slog.New(NewConsoleHandler(w, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.log.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.log.Warn(msg)
}

// Error logs an error, rendering zerr chains as a "Caused by" tree.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.json {
		l.log.Error("operation failed", "error", err)
		return
	}

	l.log.Error(formatChain(chainMessages(err)))
}

// chainMessages walks the unwrap chain, taking each link's own message.
// The first non-messager link contributes its full Error() text and ends
// the walk.
func chainMessages(err error) []string {
	var messages []string
	for err != nil {
		m, ok := err.(messager)
		if !ok {
			return append(messages, err.Error())
		}
		messages = append(messages, m.Message())
		err = errors.Unwrap(err)
	}
	return messages
}

// formatChain renders the collected messages hierarchically.
func formatChain(messages []string) string {
	var formatted []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}
		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}

	return strings.Join(formatted, "\n")
}
