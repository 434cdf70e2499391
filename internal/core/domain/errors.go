package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidOutputMode is returned when an output mode is not one of auto, tui or linear.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'tui' or 'linear'")

	// ErrNoShaderFiles is returned when the compile command is invoked without any files.
	ErrNoShaderFiles = zerr.New("no shader files specified")

	// ErrWatchFailed is returned when the watch loop aborts on a structural watcher error.
	ErrWatchFailed = zerr.New("shader watch loop failed")

	// ErrCompileBatchFailed is returned when at least one shader in a batch failed to compile.
	ErrCompileBatchFailed = zerr.New("one or more shaders failed to compile")

	// ErrWriteBytecodeFailed is returned when compiled bytecode cannot be written to disk.
	ErrWriteBytecodeFailed = zerr.New("failed to write compiled bytecode")

	// ErrOutputDirFailed is returned when the bytecode output directory cannot be created.
	ErrOutputDirFailed = zerr.New("failed to create bytecode output directory")
)
