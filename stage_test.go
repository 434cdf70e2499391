package hotglsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/nannou-org/hotglsl"
)

func TestStageForPath(t *testing.T) {
	tests := []struct {
		path string
		want hotglsl.Stage
	}{
		{path: "shaders/basic.vert", want: hotglsl.StageVertex},
		{path: "shaders/basic.vs", want: hotglsl.StageVertex},
		{path: "shaders/basic.frag", want: hotglsl.StageFragment},
		{path: "shaders/basic.fs", want: hotglsl.StageFragment},
		{path: "shaders/basic.comp", want: hotglsl.StageCompute},
		{path: "shaders/basic.cs", want: hotglsl.StageCompute},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := hotglsl.StageForPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStageForPath_Unrecognized(t *testing.T) {
	tests := []string{
		"shader.glsl",
		"shader.VERT", // matching is case-sensitive
		"shader.txt",
		"vert", // no extension at all
		"shader",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, err := hotglsl.StageForPath(path)
			require.ErrorIs(t, err, hotglsl.ErrUnknownStage)
		})
	}
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "vertex", hotglsl.StageVertex.String())
	assert.Equal(t, "fragment", hotglsl.StageFragment.String())
	assert.Equal(t, "compute", hotglsl.StageCompute.String())
}
