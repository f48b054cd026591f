package viedit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/viedit/internal/flags"
)

// newNormalEditor creates a normal-mode editor with its own register and the
// cursor at pos.
func newNormalEditor(text string, pos int) *Editor {
	e := New(Config{InitialText: text, Register: NewRegister()})
	e.SetCursor(pos)
	return e
}

// newInsertEditor creates an insert-mode editor with its own register and the
// cursor at pos.
func newInsertEditor(text string, pos int) *Editor {
	e := New(Config{InitialText: text, StartInInsert: true, Register: NewRegister()})
	e.SetCursor(pos)
	return e
}

func withFlags(e *Editor, names ...string) *Editor {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	e.flags = flags.New(m)
	return e
}

// press sends each key and requires that the editor consumed it.
func press(t *testing.T, e *Editor, keys ...string) {
	t.Helper()
	for _, k := range keys {
		res := e.HandleKey(k)
		require.True(t, res.Handled(), "key %q should be consumed", k)
	}
}

func requireState(t *testing.T, e *Editor, text string, cursor int, mode Mode) {
	t.Helper()
	require.Equal(t, text, e.Text(), "text")
	require.Equal(t, cursor, e.Cursor(), "cursor")
	require.Equal(t, mode, e.Mode(), "mode")
}
