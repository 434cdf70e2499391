// Package tui provides an interactive terminal interface for shader watching.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nannou-org/hotglsl/internal/ui/output"
)

// timeRound is the precision durations are displayed with.
const timeRound = time.Millisecond

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) Model {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Shaders:    make([]*ShaderNode, 0),
		PathMap:    make(map[string]*ShaderNode),
		SpanMap:    make(map[string]*ShaderNode),
		FollowMode: true,
	}
}
