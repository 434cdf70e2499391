package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nannou-org/hotglsl/internal/adapters/telemetry"
)

const (
	shaderListWidthRatio = 0.35
	diagPaneBorderWidth  = 4
)

// ShaderStatus represents the current state of a shader.
type ShaderStatus string

const (
	// StatusPending indicates the shader is queued for compilation.
	StatusPending ShaderStatus = "Pending"
	// StatusCompiling indicates the shader is being compiled.
	StatusCompiling ShaderStatus = "Compiling"
	// StatusDone indicates the last compilation succeeded.
	StatusDone ShaderStatus = "Done"
	// StatusError indicates the last compilation failed.
	StatusError ShaderStatus = "Error"
)

// ShaderNode represents a single shader in the UI list.
type ShaderNode struct {
	Path     string
	Stage    string
	Status   ShaderStatus
	Diag     string
	Took     time.Duration
	lastSpan time.Time
}

// Model represents the main TUI state.
type Model struct {
	Shaders     []*ShaderNode
	PathMap     map[string]*ShaderNode
	SpanMap     map[string]*ShaderNode
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	DiagWidth   int
	FollowMode  bool
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) selectedShader() *ShaderNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Shaders) {
		return m.Shaders[m.SelectedIdx]
	}
	return nil
}

// focus moves the selection to the given shader. Used by follow mode so the
// diagnostics pane tracks the shader currently being compiled.
func (m *Model) focus(node *ShaderNode) {
	for i, s := range m.Shaders {
		if s == node {
			m.SelectedIdx = i
			break
		}
	}
	m.ensureVisible()
}

// ensureShader returns the node for path, creating it on first sight. New
// shaders can appear at any time when a watched directory gains files.
func (m *Model) ensureShader(path string) *ShaderNode {
	if node, ok := m.PathMap[path]; ok {
		return node
	}
	node := &ShaderNode{
		Path:   path,
		Status: StatusPending,
	}
	m.Shaders = append(m.Shaders, node)
	m.PathMap[path] = node
	return node
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Shaders)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
			}
		case "esc":
			m.FollowMode = true
			for _, s := range m.Shaders {
				if s.Status == StatusCompiling {
					m.focus(s)
					break
				}
			}
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * shaderListWidthRatio)
		m.DiagWidth = msg.Width - listWidth - diagPaneBorderWidth

		fullHeader := titleStyle.Render("SHADERS") + "\n\n"
		m.ListHeight = msg.Height - lipgloss.Height(fullHeader)
		m.ensureVisible()

	case telemetry.MsgInitShaders:
		for _, path := range msg.Paths {
			node := m.ensureShader(path)
			node.Status = StatusPending
		}

	case telemetry.MsgCompileStart:
		node := m.ensureShader(msg.Path)
		node.Status = StatusCompiling
		node.Stage = msg.Stage
		node.lastSpan = msg.StartTime
		m.SpanMap[msg.SpanID] = node

		if m.FollowMode {
			m.focus(node)
		}

	case telemetry.MsgCompileComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			delete(m.SpanMap, msg.SpanID)
			node.Took = msg.EndTime.Sub(node.lastSpan)
			if msg.Err != nil {
				node.Status = StatusError
				node.Diag = msg.Err.Error()
			} else {
				node.Status = StatusDone
				node.Diag = ""
			}
		}
	}

	return m, nil
}
