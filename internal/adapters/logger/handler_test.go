package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/nannou-org/hotglsl/internal/adapters/logger"
)

// newHandlerBuffer returns an uncolored ConsoleHandler over a fresh buffer.
func newHandlerBuffer(t *testing.T) (*bytes.Buffer, *logger.ConsoleHandler) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return buf, logger.NewConsoleHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

func TestConsoleHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{
			name:       "info level",
			level:      slog.LevelInfo,
			msg:        "information message",
			goldenName: "handler_info",
		},
		{
			name:       "warn level",
			level:      slog.LevelWarn,
			msg:        "warning message",
			goldenName: "handler_warn",
		},
		{
			name:       "error level",
			level:      slog.LevelError,
			msg:        "error message",
			goldenName: "handler_error",
		},
		{
			name:       "debug level filtered",
			level:      slog.LevelDebug,
			msg:        "debug message",
			goldenName: "handler_debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, handler := newHandlerBuffer(t)

			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestConsoleHandler_WithAttrs(t *testing.T) {
	tests := []struct {
		name       string
		attrs      []slog.Attr
		msg        string
		goldenName string
	}{
		{
			name:       "single attribute",
			attrs:      []slog.Attr{slog.String("path", "shader.vert")},
			msg:        "single attr message",
			goldenName: "handler_attrs_single",
		},
		{
			name:       "multiple attributes",
			attrs:      []slog.Attr{slog.String("stage", "vertex"), slog.Int("bytes", 420)},
			msg:        "multi attr message",
			goldenName: "handler_attrs_multi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, handler := newHandlerBuffer(t)

			slog.New(handler.WithAttrs(tt.attrs)).Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestConsoleHandler_WithGroup(t *testing.T) {
	buf, handler := newHandlerBuffer(t)

	slog.New(handler.WithGroup("compile")).Info("grouped message", "path", "shader.frag")

	g := goldie.New(t)
	g.Assert(t, "handler_group", buf.Bytes())
}

func TestConsoleHandler_Enabled(t *testing.T) {
	handler := logger.NewConsoleHandler(&bytes.Buffer{}, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

func TestConsoleHandler_NilOptionsDefaultsToInfo(t *testing.T) {
	handler := logger.NewConsoleHandler(&bytes.Buffer{}, nil)

	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelInfo))
}
