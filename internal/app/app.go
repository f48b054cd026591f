// Package app contains the root application model.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/viedit/internal/keys"
	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/pubsub"
	"github.com/zjrosen/viedit/internal/ui/lineedit"
	"github.com/zjrosen/viedit/internal/ui/styles"
)

// DefaultHistoryLimit is how many submitted lines are kept on screen.
const DefaultHistoryLimit = 100

// Options configures the application.
type Options struct {
	Line         lineedit.Config
	HistoryLimit int
}

// Model is the root application state.
type Model struct {
	line     lineedit.Model
	keys     keys.KeyMap
	help     help.Model
	listener *pubsub.Listener[string]

	submitted    []string
	historyLimit int
	status       string

	width    int
	height   int
	quitting bool
}

// New creates the application model. Register events are followed until ctx
// is done.
func New(ctx context.Context, opts Options) Model {
	line := lineedit.New(opts.Line)

	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(styles.TextMutedColor)

	return Model{
		line:         line,
		keys:         keys.DefaultKeyMap(),
		help:         h,
		listener:     pubsub.NewListener[string](ctx, line.Editor().Register()),
		historyLimit: limit,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.line.Init(), m.listener.Listen())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.line.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submit(m.line.Value())
			m.line.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.submitted = nil
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case lineedit.ModeChangeMsg:
		log.Debug(log.CatUI, "Mode changed", "mode", msg.Mode)
		return m, nil

	case pubsub.Event[string]:
		m.status = formatRegisterEvent(msg)
		return m, m.listener.Listen()
	}

	var cmd tea.Cmd
	m.line, cmd = m.line.Update(msg)
	return m, cmd
}

func (m *Model) submit(value string) {
	log.Info(log.CatUI, "Line submitted", "len", len(value))
	m.submitted = append(m.submitted, value)
	if over := len(m.submitted) - m.historyLimit; over > 0 {
		m.submitted = m.submitted[over:]
	}
}

func formatRegisterEvent(ev pubsub.Event[string]) string {
	label := styles.YankStyle.Render(string(ev.Type))
	if ev.Type != pubsub.YankEvent {
		label = styles.DeleteStyle.Render(string(ev.Type))
	}
	return label + " " + styles.Quote(ev.Payload, 40)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	for _, line := range m.visibleHistory() {
		sb.WriteString(styles.HistoryLineStyle.Render(line))
		sb.WriteString("\n")
	}
	sb.WriteString(m.line.View())
	sb.WriteString("\n")
	sb.WriteString(m.statusBar())
	return sb.String()
}

// visibleHistory returns the submitted lines that fit above the prompt.
func (m Model) visibleHistory() []string {
	if m.height <= 0 {
		return m.submitted
	}
	room := m.height - 1 - lipgloss.Height(m.statusBar())
	if room <= 0 {
		return nil
	}
	if len(m.submitted) > room {
		return m.submitted[len(m.submitted)-room:]
	}
	return m.submitted
}

func (m Model) statusBar() string {
	helpView := m.help.View(m.keys)
	if m.status == "" {
		return styles.StatusBarStyle.Render(helpView)
	}

	register := m.status
	if m.width > 0 {
		register = styles.TruncateString(register, max(m.width/2, 10))
	}
	return styles.StatusBarStyle.Render(register + "  " + helpView)
}

// Submitted returns the lines submitted so far, oldest first.
func (m Model) Submitted() []string {
	return m.submitted
}

// Line returns the line editor.
func (m Model) Line() lineedit.Model {
	return m.line
}
