package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nannou-org/hotglsl/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.shaderList(),
		m.diagPane(),
	)
}

func (m *Model) shaderList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SHADERS") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Shaders) {
		end = len(m.Shaders)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderShaderRow(i, m.Shaders[i]) + "\n")
	}

	return s.String()
}

func (m *Model) renderShaderRow(index int, node *ShaderNode) string {
	icon := shaderIcon(node)
	rowStyle := shaderStyle(node)

	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		if node.Status != StatusDone && node.Status != StatusError {
			rowStyle = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s", icon, node.Path)
	if node.Stage != "" {
		content += " " + stageStyle.Render("("+node.Stage+")")
	}
	return cursor + rowStyle.Render(content)
}

func shaderIcon(node *ShaderNode) string {
	switch node.Status {
	case StatusCompiling:
		return style.Dot
	case StatusDone:
		return style.Check
	case StatusError:
		return style.Cross
	default: // Pending
		return style.Circle
	}
}

func shaderStyle(node *ShaderNode) lipgloss.Style {
	switch node.Status {
	case StatusCompiling:
		return shaderCompilingStyle
	case StatusDone:
		return shaderDoneStyle
	case StatusError:
		return shaderErrorStyle
	default: // Pending
		return shaderPendingStyle
	}
}

func (m *Model) diagPane() string {
	node := m.selectedShader()
	if node == nil {
		return diagStyle.Render(titleStyle.Render("DIAGNOSTICS") + "\n\nWaiting for changes...")
	}

	header := titleStyle.Render("DIAGNOSTICS: " + node.Path)

	var content string
	switch node.Status {
	case StatusError:
		content = shaderErrorStyle.Render(wrapDiag(node.Diag, m.DiagWidth))
	case StatusDone:
		content = shaderDoneStyle.Render(fmt.Sprintf("Compiled in %v", node.Took.Round(timeRound)))
	case StatusCompiling:
		content = shaderCompilingStyle.Render("Compiling...")
	default:
		content = shaderPendingStyle.Render("Waiting...")
	}

	return diagStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			"",
			content,
		),
	)
}

// wrapDiag hard-wraps diagnostic lines so long compiler messages don't
// break the horizontal layout.
func wrapDiag(diag string, width int) string {
	if width <= 0 {
		return diag
	}

	var out []string
	for _, line := range strings.Split(diag, "\n") {
		for len(line) > width {
			out = append(out, line[:width])
			line = line[width:]
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
