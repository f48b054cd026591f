package lineedit

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/viedit/internal/viedit"
)

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var namedKeys = map[string]tea.KeyType{
	"esc":       tea.KeyEscape,
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	" ":         tea.KeySpace,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+w":    tea.KeyCtrlW,
	"ctrl+a":    tea.KeyCtrlA,
	"ctrl+e":    tea.KeyCtrlE,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		if t == tea.KeySpace {
			return tea.KeyMsg{Type: t, Runes: []rune{' '}}
		}
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newModel(text string, insert bool) Model {
	return New(Config{
		Prompt:   "> ",
		ShowMode: true,
		Editor: viedit.Config{
			InitialText:   text,
			StartInInsert: insert,
			Register:      viedit.NewRegister(),
		},
	})
}

// send feeds keys one at a time and returns every message the resulting
// commands produce.
func send(m Model, ks ...string) (Model, []tea.Msg) {
	var msgs []tea.Msg
	for _, k := range ks {
		var cmd tea.Cmd
		m, cmd = m.Update(keyMsg(k))
		msgs = append(msgs, collect(cmd)...)
	}
	return m, msgs
}

// collect runs cmd and flattens batches. Commands that do not finish
// quickly, such as cursor blink ticks, are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := runCmd(cmd).(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func runCmd(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func modeChanges(msgs []tea.Msg) []ModeChangeMsg {
	var out []ModeChangeMsg
	for _, msg := range msgs {
		if mc, ok := msg.(ModeChangeMsg); ok {
			out = append(out, mc)
		}
	}
	return out
}

func TestNew_StartsInNormalMode(t *testing.T) {
	m := newModel("hello", false)
	require.Equal(t, viedit.ModeNormal, m.Mode())
	require.Equal(t, "hello", m.Value())
	require.Equal(t, 4, m.Editor().Cursor())
	require.True(t, m.Focused())
}

func TestUpdate_TypingInInsertMode(t *testing.T) {
	m := newModel("", true)

	m, _ = send(m, "h", "i", " ", "y", "o")
	require.Equal(t, "hi yo", m.Value())
	require.Equal(t, 5, m.Editor().Cursor())

	m, _ = send(m, "backspace")
	require.Equal(t, "hi y", m.Value())
	require.Equal(t, 4, m.Editor().Cursor())
}

func TestUpdate_InsertChordsGoToEditor(t *testing.T) {
	m := newModel("hello world", true)
	m.Editor().SetCursor(11)

	m, _ = send(m, "ctrl+w")
	require.Equal(t, "hello ", m.Value())
	require.Equal(t, "world", m.Editor().Register().Get())
}

func TestUpdate_NormalModeDropsPrintableKeys(t *testing.T) {
	m := newModel("abc", false)

	m, _ = send(m, "z", "q", " ")
	require.Equal(t, "abc", m.Value())
	require.Equal(t, viedit.ModeNormal, m.Mode())
}

func TestUpdate_NormalModeArrowKeys(t *testing.T) {
	m := newModel("hello", false)

	m, _ = send(m, "left", "left")
	require.Equal(t, 2, m.Editor().Cursor())

	m, _ = send(m, "right", "right", "right")
	require.Equal(t, 4, m.Editor().Cursor(), "normal mode keeps the cursor on the last character")

	m, _ = send(m, "home")
	require.Equal(t, 0, m.Editor().Cursor())
}

func TestUpdate_ModeChangeMsg(t *testing.T) {
	m := newModel("abc", false)

	m, msgs := send(m, "A")
	require.Equal(t, []ModeChangeMsg{{Mode: viedit.ModeInsert, Previous: viedit.ModeNormal}}, modeChanges(msgs))

	m, msgs = send(m, "d")
	require.Empty(t, modeChanges(msgs))
	require.Equal(t, "abcd", m.Value())

	m, msgs = send(m, "esc")
	require.Equal(t, []ModeChangeMsg{{Mode: viedit.ModeNormal, Previous: viedit.ModeInsert}}, modeChanges(msgs))
	require.Equal(t, 3, m.Editor().Cursor())
}

func TestUpdate_UndoCoversHostTyping(t *testing.T) {
	m := newModel("abc", false)

	m, _ = send(m, "A", "d", "e", "esc", "u")
	require.Equal(t, "abc", m.Value())

	m, _ = send(m, "ctrl+r")
	require.Equal(t, "abcde", m.Value())
}

func TestUpdate_Submit(t *testing.T) {
	m := newModel("git status", false)

	m, msgs := send(m, "enter")
	require.Equal(t, []tea.Msg{SubmitMsg{Value: "git status"}}, msgs)
	require.Equal(t, "git status", m.Value(), "submitting does not clear the line")

	m.Reset()
	require.Equal(t, "", m.Value())
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := newModel("", true)
	m.Blur()

	m, msgs := send(m, "a", "enter")
	require.Empty(t, msgs)
	require.Equal(t, "", m.Value())
}

func TestView(t *testing.T) {
	m := newModel("hello", false)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "NORMAL")
	require.Contains(t, view, "> ")
	require.Contains(t, view, "hello")

	m, _ = send(m, "2", "d")
	require.Contains(t, ansi.Strip(m.View()), "2d")

	m, _ = send(m, "esc", "i")
	view = ansi.Strip(m.View())
	require.Contains(t, view, "INSERT")
	require.NotContains(t, view, "2d")
}

func TestView_HidesMode(t *testing.T) {
	m := New(Config{Prompt: "$ ", Editor: viedit.Config{InitialText: "x", Register: viedit.NewRegister()}})
	require.NotContains(t, ansi.Strip(m.View()), "NORMAL")
}

func TestSetWidth(t *testing.T) {
	m := newModel("", true)
	m.SetWidth(80)
	require.Greater(t, m.input.Width, 60)

	m.SetWidth(2)
	require.Equal(t, 1, m.input.Width)
}
