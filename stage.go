package hotglsl

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Stage identifies the shader pipeline stage a source file compiles for.
type Stage uint8

const (
	// StageVertex is the vertex shader stage.
	StageVertex Stage = iota
	// StageFragment is the fragment shader stage.
	StageFragment
	// StageCompute is the compute shader stage.
	StageCompute
)

// String returns the human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// Extensions lists the recognized GLSL file extensions.
//
// There is no official GLSL file format; this is the subset used by the
// Khronos reference compiler, from which the shader stage can be inferred.
// Matching is case-sensitive and exact.
var Extensions = []string{"vert", "frag", "comp", "vs", "fs", "cs"}

var stageByExt = map[string]Stage{
	"vert": StageVertex,
	"vs":   StageVertex,
	"frag": StageFragment,
	"fs":   StageFragment,
	"comp": StageCompute,
	"cs":   StageCompute,
}

// StageForPath infers the shader stage from the path's file extension.
// It returns ErrUnknownStage if the extension is not one of Extensions.
func StageForPath(path string) (Stage, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	stage, ok := stageByExt[ext]
	if !ok {
		return 0, zerr.With(ErrUnknownStage, "path", path)
	}
	return stage, nil
}
