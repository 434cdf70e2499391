// Package detector picks the rendering mode for the current environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how compile progress is rendered.
type OutputMode int

const (
	// ModeAuto defers the choice to environment detection.
	ModeAuto OutputMode = iota
	// ModeTUI renders the interactive shader dashboard.
	ModeTUI
	// ModeLinear renders plain log lines suitable for CI and pipes.
	ModeLinear
)

func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// ciEnvVars are set to a truthy value by the CI systems we recognize.
var ciEnvVars = []string{"CI", "CONTINUOUS_INTEGRATION"}

func runningInCI() bool {
	for _, name := range ciEnvVars {
		switch os.Getenv(name) {
		case "true", "1":
			return true
		}
	}
	return false
}

// DetectEnvironment recommends an output mode for the current process.
// The dashboard needs a real terminal on stdout, and CI log collectors
// garble cursor-addressed output even when a PTY is attached.
func DetectEnvironment() OutputMode {
	if runningInCI() {
		return ModeLinear
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode folds a user-supplied mode flag into the detected mode.
// Recognized flags are "tui", "linear" and its alias "ci"; "auto", an
// empty flag, or anything unrecognized keeps the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	}
	return detected
}
