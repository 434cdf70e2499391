package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples compile-outcome reporting from presentation, allowing the
// same event stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background
	// goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare
	// for shutdown. It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnBatchBegin is called when a drain produced a non-empty touched
	// set, before any compilation starts. paths carries every shader
	// about to be compiled.
	OnBatchBegin(paths []string)

	// OnCompileStart is called when compilation of one shader begins.
	// spanID: unique identifier for this compilation
	// path: the shader file
	// stage: the inferred pipeline stage, empty if inference failed
	OnCompileStart(spanID, path, stage string, startTime time.Time)

	// OnCompileComplete is called when compilation of one shader
	// finishes. err is nil on success and carries the compiler
	// diagnostic or I/O failure otherwise.
	OnCompileComplete(spanID string, endTime time.Time, err error)
}
