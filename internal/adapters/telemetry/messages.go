package telemetry

import (
	"time"
)

// MsgInitShaders resets the shader list shown by the UI at the start of a
// rebuild batch.
type MsgInitShaders struct {
	Paths []string
}

// MsgCompileStart indicates compilation of one shader (span) has started.
type MsgCompileStart struct {
	SpanID    string
	Path      string
	Stage     string
	StartTime time.Time
}

// MsgCompileComplete indicates compilation of one shader (span) has finished.
type MsgCompileComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
