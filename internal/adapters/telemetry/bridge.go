// Package telemetry bridges OpenTelemetry spans to the renderer layer.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/nannou-org/hotglsl/internal/core/ports"
)

// Span attribute keys recorded on every compile span.
const (
	AttrShaderPath  = "shader.path"
	AttrShaderStage = "shader.stage"
)

// Bridge implements sdktrace.SpanProcessor to bridge OTel spans to a Renderer.
// Every compile span carries the shader path and stage as attributes, which
// the bridge forwards as renderer events.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{
		renderer: renderer,
	}
}

// shaderAttrs extracts the compile attributes from a started span. A span
// without an explicit path attribute reports its name as the path.
func shaderAttrs(s sdktrace.ReadWriteSpan) (path, stage string) {
	path = s.Name()
	for _, attr := range s.Attributes() {
		switch string(attr.Key) {
		case AttrShaderPath:
			path = attr.Value.AsString()
		case AttrShaderStage:
			stage = attr.Value.AsString()
		}
	}
	return path, stage
}

// compileError converts a span's status into the error handed to the
// renderer, nil for successful compiles.
func compileError(s sdktrace.ReadOnlySpan) error {
	if s.Status().Code != codes.Error {
		return nil
	}
	desc := s.Status().Description
	if desc == "" {
		desc = "compilation failed"
	}
	return errors.New(desc)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	path, stage := shaderAttrs(s)
	b.renderer.OnCompileStart(sc.SpanID().String(), path, stage, s.StartTime())
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	b.renderer.OnCompileComplete(sc.SpanID().String(), s.EndTime(), compileError(s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
