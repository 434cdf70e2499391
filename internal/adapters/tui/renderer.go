package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nannou-org/hotglsl/internal/adapters/telemetry"
)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnBatchBegin forwards the touched shader set to the TUI.
func (r *Renderer) OnBatchBegin(paths []string) {
	r.program.Send(telemetry.MsgInitShaders{
		Paths: paths,
	})
}

// OnCompileStart forwards compile start events to the TUI.
func (r *Renderer) OnCompileStart(spanID, path, stage string, startTime time.Time) {
	r.program.Send(telemetry.MsgCompileStart{
		SpanID:    spanID,
		Path:      path,
		Stage:     stage,
		StartTime: startTime,
	})
}

// OnCompileComplete forwards compile completion events to the TUI.
func (r *Renderer) OnCompileComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(telemetry.MsgCompileComplete{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
