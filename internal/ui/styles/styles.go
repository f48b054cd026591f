// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Typed text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"} // Submitted lines
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Mode indicator backgrounds
	ModeNormalColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	ModeInsertColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	ModeTextColor   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

	baseModeStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(ModeTextColor)

	ModeNormalStyle = baseModeStyle.Background(ModeNormalColor)
	ModeInsertStyle = baseModeStyle.Background(ModeInsertColor)

	// Pending operator and count, e.g. "2d"
	PendingStyle = lipgloss.NewStyle().Foreground(StatusWarningColor).PaddingLeft(1)

	PromptStyle = lipgloss.NewStyle().Foreground(ModeNormalColor).Bold(true)

	// Previously submitted lines above the prompt
	HistoryLineStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Padding(0, 1)

	// Register event labels in the status bar
	YankStyle   = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	DeleteStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true)
)

// RenderMode returns the mode badge for name ("NORMAL" or "INSERT").
func RenderMode(name string) string {
	if name == "INSERT" {
		return ModeInsertStyle.Render(name)
	}
	return ModeNormalStyle.Render(name)
}
