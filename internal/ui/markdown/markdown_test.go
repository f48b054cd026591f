package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	for _, style := range []string{"", "dark", "light", "ascii"} {
		t.Run(style, func(t *testing.T) {
			r, err := New(style, 60)
			require.NoError(t, err)
			require.Equal(t, 60, r.Width())

			out, err := r.Render("## Motions\n\n| Key | Action |\n|---|---|\n| `w` | next word |\n")
			require.NoError(t, err)

			plain := ansi.Strip(out)
			require.Contains(t, plain, "Motions")
			require.Contains(t, plain, "next word")
		})
	}
}
