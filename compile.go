package hotglsl

import (
	"context"
	"os"

	"go.trai.ch/zerr"
)

// Compiler turns GLSL source text into SPIR-V bytecode for a given stage.
//
// Implementations must behave as pure functions of (source, stage): on
// success they return the raw bytecode, on rejection an error carrying the
// compiler's diagnostic text.
type Compiler interface {
	Compile(ctx context.Context, source string, stage Stage) ([]byte, error)
}

// CompileFile compiles the GLSL file at the given path to SPIR-V.
//
// The shader stage is inferred from the path extension; an unrecognized
// extension yields ErrUnknownStage rather than a panic, so callers may feed
// arbitrary paths here without pre-filtering. A file that cannot be read
// yields an ErrReadShader chain.
func CompileFile(ctx context.Context, c Compiler, path string) ([]byte, error) {
	stage, err := StageForPath(path)
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrReadShader.Error()), "path", path)
	}
	return c.Compile(ctx, string(source), stage)
}
