package tui_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nannou-org/hotglsl/internal/adapters/telemetry"
	"github.com/nannou-org/hotglsl/internal/adapters/tui"
)

func newTestModel(t *testing.T) *tui.Model {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(nil)
	return &m
}

func sendMsg(m *tui.Model, msg tea.Msg) *tui.Model {
	next, _ := m.Update(msg)
	return next.(*tui.Model)
}

func TestModel_InitShadersPopulatesList(t *testing.T) {
	m := newTestModel(t)

	m = sendMsg(m, telemetry.MsgInitShaders{
		Paths: []string{"a.vert", "b.frag"},
	})

	require.Len(t, m.Shaders, 2)
	assert.Equal(t, tui.StatusPending, m.Shaders[0].Status)
	assert.Equal(t, tui.StatusPending, m.Shaders[1].Status)
}

func TestModel_InitShadersIsIncremental(t *testing.T) {
	m := newTestModel(t)

	m = sendMsg(m, telemetry.MsgInitShaders{Paths: []string{"a.vert"}})
	m = sendMsg(m, telemetry.MsgInitShaders{Paths: []string{"a.vert", "new.comp"}})

	// A second batch re-marks known shaders and appends unseen ones.
	require.Len(t, m.Shaders, 2)
	assert.Equal(t, "new.comp", m.Shaders[1].Path)
}

func TestModel_CompileLifecycle(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = sendMsg(m, telemetry.MsgInitShaders{Paths: []string{"a.vert"}})
	m = sendMsg(m, telemetry.MsgCompileStart{
		SpanID:    "span1",
		Path:      "a.vert",
		Stage:     "vertex",
		StartTime: start,
	})

	require.Len(t, m.Shaders, 1)
	assert.Equal(t, tui.StatusCompiling, m.Shaders[0].Status)
	assert.Equal(t, "vertex", m.Shaders[0].Stage)

	m = sendMsg(m, telemetry.MsgCompileComplete{
		SpanID:  "span1",
		EndTime: start.Add(30 * time.Millisecond),
	})

	assert.Equal(t, tui.StatusDone, m.Shaders[0].Status)
	assert.Equal(t, 30*time.Millisecond, m.Shaders[0].Took)
	assert.Empty(t, m.Shaders[0].Diag)
}

func TestModel_CompileFailureStoresDiagnostic(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = sendMsg(m, telemetry.MsgCompileStart{
		SpanID:    "span1",
		Path:      "broken.frag",
		Stage:     "fragment",
		StartTime: start,
	})
	m = sendMsg(m, telemetry.MsgCompileComplete{
		SpanID:  "span1",
		EndTime: start.Add(time.Millisecond),
		Err:     errors.New("ERROR: 0:3: 'vec9' : undeclared identifier"),
	})

	require.Len(t, m.Shaders, 1)
	assert.Equal(t, tui.StatusError, m.Shaders[0].Status)
	assert.Contains(t, m.Shaders[0].Diag, "undeclared identifier")
}

func TestModel_RecompileClearsDiagnostic(t *testing.T) {
	m := newTestModel(t)
	start := time.Now()

	m = sendMsg(m, telemetry.MsgCompileStart{SpanID: "s1", Path: "a.frag", StartTime: start})
	m = sendMsg(m, telemetry.MsgCompileComplete{
		SpanID: "s1", EndTime: start.Add(time.Millisecond), Err: errors.New("boom"),
	})
	m = sendMsg(m, telemetry.MsgCompileStart{SpanID: "s2", Path: "a.frag", StartTime: start})
	m = sendMsg(m, telemetry.MsgCompileComplete{
		SpanID: "s2", EndTime: start.Add(time.Millisecond),
	})

	assert.Equal(t, tui.StatusDone, m.Shaders[0].Status)
	assert.Empty(t, m.Shaders[0].Diag)
}

func TestModel_CompleteForUnknownSpanIsIgnored(t *testing.T) {
	m := newTestModel(t)

	m = sendMsg(m, telemetry.MsgCompileComplete{SpanID: "ghost", EndTime: time.Now()})
	assert.Empty(t, m.Shaders)
}

func TestModel_Navigation(t *testing.T) {
	m := newTestModel(t)

	m = sendMsg(m, telemetry.MsgInitShaders{
		Paths: []string{"a.vert", "b.frag", "c.comp"},
	})
	m = sendMsg(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = sendMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, m.SelectedIdx)
	assert.False(t, m.FollowMode)

	m = sendMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, m.SelectedIdx)

	// Cannot move above the first entry.
	m = sendMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, m.SelectedIdx)
}

func TestModel_EscRestoresFollowMode(t *testing.T) {
	m := newTestModel(t)

	m = sendMsg(m, telemetry.MsgInitShaders{Paths: []string{"a.vert", "b.frag"}})
	m = sendMsg(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = sendMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	require.False(t, m.FollowMode)

	m = sendMsg(m, telemetry.MsgCompileStart{SpanID: "s1", Path: "a.vert", StartTime: time.Now()})
	// Manual mode keeps the selection in place.
	assert.Equal(t, 1, m.SelectedIdx)

	m = sendMsg(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.FollowMode)
	assert.Equal(t, 0, m.SelectedIdx)
}

func TestModel_FollowModeTracksActiveCompile(t *testing.T) {
	m := newTestModel(t)

	m = sendMsg(m, telemetry.MsgInitShaders{Paths: []string{"a.vert", "b.frag"}})
	m = sendMsg(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m = sendMsg(m, telemetry.MsgCompileStart{SpanID: "s1", Path: "b.frag", StartTime: time.Now()})
	assert.Equal(t, 1, m.SelectedIdx)
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
