package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxWidth int
		expected string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny width", "hello", 2, ".."},
		{"zero width", "hello", 0, ""},
		{"wide runes", "日本語テキスト", 7, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateString(tt.s, tt.maxWidth))
		})
	}
}

func TestTruncateString_KeepsStyling(t *testing.T) {
	styled := "\x1b[1mhello world\x1b[0m"
	got := TruncateString(styled, 8)
	require.Equal(t, "hello...", ansi.Strip(got))
	require.LessOrEqual(t, ansi.StringWidth(got), 8)
}

func TestQuote(t *testing.T) {
	require.Equal(t, `"hello "`, Quote("hello ", 20))
	require.Equal(t, `"a\tb"`, Quote("a\tb", 20))
	require.Equal(t, `"hello...`, Quote("hello world", 9))
}

func TestFormatPending(t *testing.T) {
	tests := []struct {
		count    int
		op       string
		expected string
	}{
		{1, "", ""},
		{1, "d", "d"},
		{3, "", "3"},
		{12, "c", "12c"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, FormatPending(tt.count, tt.op))
	}
}

func TestRenderMode(t *testing.T) {
	require.Equal(t, " NORMAL ", ansi.Strip(RenderMode("NORMAL")))
	require.Equal(t, " INSERT ", ansi.Strip(RenderMode("INSERT")))
}
