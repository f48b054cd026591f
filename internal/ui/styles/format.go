package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to fit within maxWidth, adding ellipsis if needed.
// ANSI styling in s is preserved.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return ansi.Truncate(s, maxWidth, "...")
}

// Quote renders register text for the status bar: quoted, with control
// characters escaped, and shortened to maxWidth.
func Quote(text string, maxWidth int) string {
	return TruncateString(strconv.Quote(text), maxWidth)
}

// FormatPending returns the count and operator prefix shown while a command
// is being typed. A count of 1 is not shown; an empty result means nothing
// is pending.
func FormatPending(count int, op string) string {
	var sb strings.Builder
	if count > 1 {
		sb.WriteString(strconv.Itoa(count))
	}
	sb.WriteString(op)
	return sb.String()
}
