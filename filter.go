package hotglsl

import (
	"os"
	"path/filepath"
	"strings"
)

// IsShaderPath reports whether the path currently resolves to a regular
// file with a recognized shader extension.
//
// This is how events from watched directories are narrowed down to the
// files that are shaders. Paths that fail either test are not an error,
// they are simply not shaders.
func IsShaderPath(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	_, ok := stageByExt[ext]
	return ok
}

// shaderPaths filters an event's affected paths down to the shader files.
func shaderPaths(paths []string) []string {
	var out []string
	for _, p := range paths {
		if IsShaderPath(p) {
			out = append(out, p)
		}
	}
	return out
}
