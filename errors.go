package hotglsl

import "go.trai.ch/zerr"

var (
	// ErrChannelClosed is returned when the channel used to receive
	// filesystem events has been closed. The Watcher is unusable for
	// further waiting once this is observed.
	ErrChannelClosed = zerr.New("the channel used to receive filesystem events was closed")

	// ErrNotify is returned when the filesystem observation mechanism
	// reported an error for a specific event. Subsequent calls may still
	// succeed.
	ErrNotify = zerr.New("the filesystem watcher signalled an error")

	// ErrUnknownStage is returned when a shader stage cannot be inferred
	// from a file's extension.
	ErrUnknownStage = zerr.New("cannot infer a shader stage from the file extension")

	// ErrReadShader is returned when a shader source file cannot be read.
	ErrReadShader = zerr.New("failed to read shader source")

	// ErrCompile is returned when the compiler rejects a shader. The error
	// message carries the compiler's diagnostic text.
	ErrCompile = zerr.New("shader compilation failed")
)
