package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nannou-org/hotglsl/internal/adapters/detector"
)

func TestDetectEnvironment_CIForcesLinear(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{name: "CI=true", envVar: "CI", value: "true"},
		{name: "CI=1", envVar: "CI", value: "1"},
		{name: "CONTINUOUS_INTEGRATION=true", envVar: "CONTINUOUS_INTEGRATION", value: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NonTTYFallsBackToLinear(t *testing.T) {
	t.Setenv("CI", "")

	// Test processes never run with stdout attached to a terminal, so
	// without a CI override detection still lands on linear.
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "auto",
			expected:     detector.ModeTUI,
		},
		{
			name:         "empty flag respects detection",
			autoDetected: detector.ModeLinear,
			userFlag:     "",
			expected:     detector.ModeLinear,
		},
		{
			name:         "tui overrides detection",
			autoDetected: detector.ModeLinear,
			userFlag:     "tui",
			expected:     detector.ModeTUI,
		},
		{
			name:         "linear overrides detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "linear",
			expected:     detector.ModeLinear,
		},
		{
			name:         "ci is an alias for linear",
			autoDetected: detector.ModeTUI,
			userFlag:     "ci",
			expected:     detector.ModeLinear,
		},
		{
			name:         "unknown flag falls back to detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "holographic",
			expected:     detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}
