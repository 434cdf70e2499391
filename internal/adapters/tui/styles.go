package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nannou-org/hotglsl/internal/ui/style"
)

var (
	shaderPendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	shaderCompilingStyle = lipgloss.NewStyle().
				Foreground(style.Amber).
				Bold(true)

	shaderDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	shaderErrorStyle = lipgloss.NewStyle().
				Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Amber).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Amber).
			Foreground(style.White)

	diagStyle = lipgloss.NewStyle().
			Padding(0, 1)

	stageStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
