// Package linear provides a synchronous, line-oriented renderer for CI
// and other non-interactive environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer for non-interactive environments.
// It prints one chronological line per compile event, prefixed with the
// shader path.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu       sync.Mutex
	compiles map[string]*compileState // spanID -> compile state
}

type compileState struct {
	path      string
	stage     string
	startTime time.Time
}

// NewRenderer creates a new linear Renderer writing to stderr.
func NewRenderer(stderr io.Writer) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	output := termenv.NewOutput(stderr, termenv.WithProfile(colorProfile()))

	return &Renderer{
		stderr:   stderr,
		output:   output,
		compiles: make(map[string]*compileState),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	// Basic colors only, CI log viewers rarely support more
	return termenv.ANSI
}

// Start is a no-op, the linear renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op, every event is printed as it arrives.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op, the linear renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnBatchBegin announces how many shaders the change touched.
func (r *Renderer) OnBatchBegin(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Rebuilding %d shader(s)\n", len(paths))
}

// OnCompileStart prints a compile start line.
func (r *Renderer) OnCompileStart(spanID, path, stage string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.compiles[spanID] = &compileState{
		path:      path,
		stage:     stage,
		startTime: startTime,
	}

	prefix := r.output.String(fmt.Sprintf("[%s]", path)).Faint().String()
	if stage != "" {
		_, _ = fmt.Fprintf(r.stderr, "%s Compiling %s shader...\n", prefix, stage)
	} else {
		_, _ = fmt.Fprintf(r.stderr, "%s Compiling...\n", prefix)
	}
}

// OnCompileComplete prints the outcome, including compiler diagnostics on
// failure.
func (r *Renderer) OnCompileComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	compile, ok := r.compiles[spanID]
	if !ok {
		return
	}
	delete(r.compiles, spanID)

	duration := endTime.Sub(compile.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", compile.path)

	if err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v\n", prefix, symbol, duration)
		r.printDiagnosticLocked(err)
		return
	}

	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Compiled in %v\n", prefix, symbol, duration)
}

// printDiagnosticLocked prints a compiler diagnostic indented under the
// outcome line. Must be called with r.mu held.
func (r *Renderer) printDiagnosticLocked(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		_, _ = fmt.Fprintf(r.stderr, "    %s\n", line)
	}
}
