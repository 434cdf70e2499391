package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/nannou-org/hotglsl/internal/ui/output"
	"github.com/nannou-org/hotglsl/internal/ui/style"
)

// ConsoleHandler is a slog.Handler that renders records as single colored
// lines, matching the rest of the terminal output.
type ConsoleHandler struct {
	out    *termenv.Output
	min    slog.Leveler
	bound  []slog.Attr
	prefix string
}

// NewConsoleHandler returns a handler writing to w. A nil w falls back to
// stderr; a nil opts enables info and above.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	min := &slog.LevelVar{}
	if opts != nil && opts.Level != nil {
		min.Set(opts.Level.Level())
	}

	return &ConsoleHandler{
		out: output.New(w),
		min: min,
	}
}

// Enabled reports whether records at the given level are emitted.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min.Level()
}

// Handle renders one record as a line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	icon, tint := h.decorate(r.Level)

	var line strings.Builder
	if icon != "" {
		line.WriteString(icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	for _, attr := range h.bound {
		h.writeAttr(&line, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.writeAttr(&line, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(tint)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.bound = append(h.bound[:len(h.bound):len(h.bound)], attrs...)
	return &clone
}

// WithGroup returns a handler that qualifies attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.prefix = name
	return &clone
}

func (h *ConsoleHandler) decorate(level slog.Level) (icon string, tint termenv.Color) {
	switch level {
	case slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

func (h *ConsoleHandler) writeAttr(line *strings.Builder, attr slog.Attr) {
	line.WriteByte(' ')
	if h.prefix != "" {
		line.WriteString(h.prefix)
		line.WriteByte('.')
	}
	line.WriteString(attr.Key)
	line.WriteByte('=')
	line.WriteString(attr.Value.String())
}
