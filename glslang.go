package hotglsl

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultGlslangBinary is the executable NewGlslang looks for. Newer
// releases install the same tool as "glslang"; use NewGlslangBinary to
// point at it.
const DefaultGlslangBinary = "glslangValidator"

// Glslang compiles GLSL to SPIR-V by invoking the Khronos reference
// compiler as a subprocess. Source text is fed on stdin and the compiled
// module is read back from a temporary output file.
type Glslang struct {
	binary string
}

// NewGlslang returns a compiler that invokes DefaultGlslangBinary from PATH.
func NewGlslang() *Glslang {
	return &Glslang{binary: DefaultGlslangBinary}
}

// NewGlslangBinary returns a compiler that invokes the given executable.
func NewGlslangBinary(binary string) *Glslang {
	if binary == "" {
		binary = DefaultGlslangBinary
	}
	return &Glslang{binary: binary}
}

// Compile implements Compiler. A non-zero compiler exit yields an
// ErrCompile chain whose message carries the compiler's diagnostic output.
func (g *Glslang) Compile(ctx context.Context, source string, stage Stage) ([]byte, error) {
	out, err := os.CreateTemp("", "hotglsl-*.spv")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create SPIR-V output file")
	}
	outPath := out.Name()
	_ = out.Close()
	defer func() {
		_ = os.Remove(outPath)
	}()

	// --stdin requires the stage to be named explicitly since there is no
	// file extension to infer it from.
	cmd := exec.CommandContext(ctx, g.binary, "-V", "--stdin", "-S", glslangStage(stage), "-o", outPath)
	cmd.Stdin = strings.NewReader(source)

	var diag bytes.Buffer
	cmd.Stdout = &diag
	cmd.Stderr = &diag

	if err := cmd.Run(); err != nil {
		msg := ErrCompile.Error()
		if d := strings.TrimSpace(diag.String()); d != "" {
			msg += ": " + d
		}
		return nil, zerr.Wrap(err, msg)
	}

	spirv, err := os.ReadFile(outPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read compiled SPIR-V output")
	}
	return spirv, nil
}

// glslangStage maps a Stage to the compiler's -S argument.
func glslangStage(stage Stage) string {
	switch stage {
	case StageFragment:
		return "frag"
	case StageCompute:
		return "comp"
	default:
		return "vert"
	}
}
