// Package lineedit provides a single-line input with vi-style modal editing.
//
// Keys go to a viedit.Editor first. Keys it does not consume fall through to
// a bubbles textinput, which handles typing in insert mode and plain cursor
// keys in normal mode. The two are synced after every key.
package lineedit

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/viedit/internal/keys"
	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/ui/styles"
	"github.com/zjrosen/viedit/internal/viedit"
)

// SubmitMsg is sent when the user submits the line (Enter).
type SubmitMsg struct {
	Value string
}

// ModeChangeMsg is sent when the editing mode changes.
type ModeChangeMsg struct {
	Mode     viedit.Mode
	Previous viedit.Mode
}

// Config configures a line editor.
type Config struct {
	Prompt   string
	ShowMode bool
	Editor   viedit.Config
}

// normalPassthrough are the host keys still honoured in normal mode.
var normalPassthrough = map[string]bool{
	"left":  true,
	"right": true,
	"home":  true,
	"end":   true,
}

// Model is the line editor component.
type Model struct {
	editor   *viedit.Editor
	input    textinput.Model
	keys     keys.KeyMap
	showMode bool
}

// New creates a line editor from cfg. The returned model is focused.
func New(cfg Config) Model {
	input := textinput.New()
	input.Prompt = cfg.Prompt
	input.PromptStyle = styles.PromptStyle
	input.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	input.Focus()

	m := Model{
		editor:   viedit.New(cfg.Editor),
		input:    input,
		keys:     keys.DefaultKeyMap(),
		showMode: cfg.ShowMode,
	}
	m.syncInput()
	_ = m.input.Cursor.SetMode(cursorMode(m.editor.Mode()))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.input.Cursor.SetMode(cursorMode(m.editor.Mode()))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if !m.input.Focused() {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Submit) {
		value := m.editor.Text()
		return m, func() tea.Msg { return SubmitMsg{Value: value} }
	}

	previous := m.editor.Mode()
	var cmds []tea.Cmd

	res := m.editor.HandleKey(keyMsg.String())
	if res.Handled() {
		m.syncInput()
	} else {
		cmds = append(cmds, m.forward(keyMsg))
	}

	if mode := m.editor.Mode(); mode != previous {
		log.Debug(log.CatUI, "Line editor mode changed", "from", previous, "to", mode)
		cmds = append(cmds,
			m.input.Cursor.SetMode(cursorMode(mode)),
			func() tea.Msg { return ModeChangeMsg{Mode: mode, Previous: previous} },
		)
	}
	return m, tea.Batch(cmds...)
}

// forward hands an unconsumed key to the text input and copies the result
// back into the editor.
func (m *Model) forward(msg tea.KeyMsg) tea.Cmd {
	if m.editor.Mode() == viedit.ModeNormal && !normalPassthrough[msg.String()] {
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.SetText(m.input.Value())
	m.editor.SetCursor(m.input.Position())
	m.syncInput()
	return cmd
}

func (m *Model) syncInput() {
	m.input.SetValue(m.editor.Text())
	m.input.SetCursor(m.editor.Cursor())
}

// View renders the mode badge, the input and any pending count or operator.
func (m Model) View() string {
	var parts []string
	if m.showMode {
		parts = append(parts, styles.RenderMode(m.editor.Mode().String())+" ")
	}
	parts = append(parts, m.input.View())
	if pending := styles.FormatPending(m.editor.Count(), m.editor.PendingOperator().String()); pending != "" && m.editor.Mode() == viedit.ModeNormal {
		parts = append(parts, styles.PendingStyle.Render(pending))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Focus focuses the input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes focus from the input.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused returns whether the input is focused.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetWidth sets the display width of the text area.
func (m *Model) SetWidth(w int) {
	badge := 0
	if m.showMode {
		badge = lipgloss.Width(styles.RenderMode(viedit.ModeNormal.String())) + 1
	}
	m.input.Width = max(w-badge-lipgloss.Width(m.input.Prompt)-4, 1)
}

// Value returns the current line.
func (m Model) Value() string {
	return m.editor.Text()
}

// Reset clears the line after a submit.
func (m *Model) Reset() {
	m.editor.Reset("")
	m.syncInput()
}

// Mode returns the current editing mode.
func (m Model) Mode() viedit.Mode {
	return m.editor.Mode()
}

// Editor returns the underlying editor.
func (m Model) Editor() *viedit.Editor {
	return m.editor
}

func cursorMode(mode viedit.Mode) cursor.Mode {
	if mode == viedit.ModeNormal {
		return cursor.CursorStatic
	}
	return cursor.CursorBlink
}
