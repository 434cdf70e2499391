package telemetry

import (
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/nannou-org/hotglsl/internal/core/ports"
)

// TracerName is the instrumentation name used for compile spans.
const TracerName = "hotglsl"

// NewTracerProvider builds a TracerProvider whose spans are reported to the
// given renderer through a Bridge.
func NewTracerProvider(renderer ports.Renderer) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(renderer)),
	)
}
