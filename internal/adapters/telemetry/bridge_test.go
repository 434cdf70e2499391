package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/nannou-org/hotglsl/internal/adapters/telemetry"
	"github.com/nannou-org/hotglsl/internal/core/ports/mocks"
)

// startSpan creates a recording span through a plain provider so the bridge
// can be driven directly. The bridge itself is not registered to avoid
// double delivery.
func startSpan(t *testing.T, opts ...trace.SpanStartOption) trace.Span {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	_, span := tp.Tracer("test").Start(t.Context(), "shader.vert", opts...)
	return span
}

func TestBridge_OnStart_ForwardsAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	span := startSpan(t, trace.WithAttributes(
		attribute.String(telemetry.AttrShaderPath, "shaders/blob.frag"),
		attribute.String(telemetry.AttrShaderStage, "fragment"),
	))
	defer span.End()

	mockRenderer.EXPECT().
		OnCompileStart(gomock.Any(), "shaders/blob.frag", "fragment", gomock.Any()).
		Times(1)

	rwSpan, ok := span.(sdktrace.ReadWriteSpan)
	require.True(t, ok)
	bridge.OnStart(t.Context(), rwSpan)
}

func TestBridge_OnStart_FallsBackToSpanName(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	span := startSpan(t)
	defer span.End()

	mockRenderer.EXPECT().
		OnCompileStart(gomock.Any(), "shader.vert", "", gomock.Any()).
		Times(1)

	rwSpan, ok := span.(sdktrace.ReadWriteSpan)
	require.True(t, ok)
	bridge.OnStart(t.Context(), rwSpan)
}

func TestBridge_OnStart_NilRenderer(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(t.Context(), "shader.vert")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(t.Context(), rwSpan)
	}
}

func TestBridge_OnEnd_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	span := startSpan(t)
	span.End()

	mockRenderer.EXPECT().OnCompileComplete(gomock.Any(), gomock.Any(), nil).Times(1)

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	bridge.OnEnd(roSpan)
}

func TestBridge_OnEnd_ErrorStatusBecomesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	span := startSpan(t)
	span.SetStatus(codes.Error, "ERROR: 0:3: 'vec9' : undeclared identifier")
	span.End()

	var got error
	mockRenderer.EXPECT().
		OnCompileComplete(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ string, _ any, err error) { got = err }).
		Times(1)

	roSpan, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	bridge.OnEnd(roSpan)

	require.Error(t, got)
	assert.Contains(t, got.Error(), "undeclared identifier")
}

func TestBridge_ForceFlushAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := telemetry.NewBridge(mocks.NewMockRenderer(ctrl))

	assert.NoError(t, bridge.ForceFlush(t.Context()))
	assert.NoError(t, bridge.Shutdown(t.Context()))
}

func TestNewTracerProvider_DeliversSpansToRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)

	mockRenderer.EXPECT().
		OnCompileStart(gomock.Any(), "shaders/blob.frag", "fragment", gomock.Any()).
		Times(1)
	mockRenderer.EXPECT().
		OnCompileComplete(gomock.Any(), gomock.Any(), nil).
		Times(1)

	tp := telemetry.NewTracerProvider(mockRenderer)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	_, span := tp.Tracer(telemetry.TracerName).Start(t.Context(), "shaders/blob.frag",
		trace.WithAttributes(
			attribute.String(telemetry.AttrShaderPath, "shaders/blob.frag"),
			attribute.String(telemetry.AttrShaderStage, "fragment"),
		))
	span.End()
}
