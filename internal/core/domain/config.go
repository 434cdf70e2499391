package domain

import "time"

// ConfigFileName is the configuration file discovered by walking up from
// the working directory.
const ConfigFileName = "hotglsl.yaml"

// DefaultSettle is how long the watch loop waits after the first event of
// a burst before draining, so editors that fire several events per save
// produce a single recompile.
const DefaultSettle = 50 * time.Millisecond

// Config carries the settings for the watch and compile commands.
// Zero values mean "use the default"; flags override config values.
type Config struct {
	// Paths are the files or directories to observe.
	Paths []string
	// CompilerBinary names the glslang executable to invoke.
	CompilerBinary string
	// Settle is the event coalescing window for the watch loop.
	Settle time.Duration
	// Out is the directory compiled bytecode is written to. Empty means
	// bytecode is discarded after reporting the outcome.
	Out string
	// OutputMode selects the renderer: auto, tui or linear.
	OutputMode string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Paths:      []string{"."},
		Settle:     DefaultSettle,
		OutputMode: "auto",
	}
}
