// Package config provides the configuration loader for hotglsl.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/nannou-org/hotglsl/internal/core/domain"
	"github.com/nannou-org/hotglsl/internal/core/ports"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validOutputModes = []string{"auto", "tui", "linear"}

// Load walks up from cwd looking for hotglsl.yaml. A missing file yields
// the defaults; only read and parse failures are errors.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(), nil
	}

	// #nosec G304 -- path is discovered relative to the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return l.buildConfig(configPath, &file)
}

// findConfiguration searches cwd and its ancestors for the config file.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// buildConfig merges the parsed file over the defaults. Relative shader
// paths and the output directory resolve against the config file's
// directory, not the process working directory.
func (l *Loader) buildConfig(configPath string, file *File) (*domain.Config, error) {
	cfg := domain.DefaultConfig()
	baseDir := filepath.Dir(configPath)

	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q in %s, proceeding anyway", file.Version, configPath))
	}

	if len(file.Paths) > 0 {
		cfg.Paths = make([]string, len(file.Paths))
		for i, p := range file.Paths {
			cfg.Paths[i] = resolvePath(baseDir, p)
		}
	} else {
		cfg.Paths = []string{baseDir}
	}

	if file.Compiler != "" {
		cfg.CompilerBinary = file.Compiler
	}

	if file.Settle != "" {
		settle, err := time.ParseDuration(file.Settle)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "settle", file.Settle)
		}
		cfg.Settle = settle
	}

	if file.Out != "" {
		cfg.Out = resolvePath(baseDir, file.Out)
	}

	if file.Output != "" {
		if !slices.Contains(validOutputModes, file.Output) {
			return nil, zerr.With(domain.ErrInvalidOutputMode, "output", file.Output)
		}
		cfg.OutputMode = file.Output
	}

	return cfg, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
