package viedit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/viedit/internal/flags"
)

func TestInsert_LiteralKeysAreUnhandled(t *testing.T) {
	e := newInsertEditor("hello", 5)

	for _, key := range []string{"a", "x", "1", "0", " ", "backspace", "enter", "ctrl+r", "u"} {
		res := e.HandleKey(key)
		require.Equal(t, Result{Outcome: Unhandled, Key: key}, res, "key %q", key)
	}
	requireState(t, e, "hello", 5, ModeInsert)
}

func TestInsert_EscapeStepsBack(t *testing.T) {
	e := newInsertEditor("hello", 5)
	press(t, e, "esc")
	requireState(t, e, "hello", 4, ModeNormal)

	e = newInsertEditor("hello", 0)
	press(t, e, "esc")
	requireState(t, e, "hello", 0, ModeNormal)

	e = newInsertEditor("", 0)
	press(t, e, "esc")
	requireState(t, e, "", 0, ModeNormal)
}

// TestInsert_EscapeThenInsertKeepsCursor checks that esc followed by i returns
// to insert mode without moving further.
func TestInsert_EscapeThenInsertKeepsCursor(t *testing.T) {
	e := newInsertEditor("hello", 3)
	press(t, e, "esc")
	afterEsc := e.Cursor()

	press(t, e, "i")
	requireState(t, e, "hello", afterEsc, ModeInsert)
}

func TestInsert_Chords(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		key        string
		wantText   string
		wantCursor int
		wantReg    string
	}{
		{"ctrl+a to line start", "hello world", 7, "ctrl+a", "hello world", 0, "previous"},
		{"ctrl+e past last char", "hello world", 0, "ctrl+e", "hello world", 11, "previous"},
		{"ctrl+u deletes to line start", "hello world", 6, "ctrl+u", "world", 0, "hello "},
		{"ctrl+k deletes to line end", "hello world", 5, "ctrl+k", "hello", 5, " world"},
		{"ctrl+k at end removes nothing", "hello", 5, "ctrl+k", "hello", 5, ""},
		{"ctrl+w deletes word behind", "hello world", 11, "ctrl+w", "hello ", 6, "world"},
		{"ctrl+w after space", "hello world ", 12, "ctrl+w", "hello ", 6, "world "},
		{"ctrl+b word backward", "hello world", 11, "ctrl+b", "hello world", 6, "previous"},
		{"ctrl+f word forward", "hello world", 0, "ctrl+f", "hello world", 6, "previous"},
		{"ctrl+f from last word to end", "hello world", 6, "ctrl+f", "hello world", 11, "previous"},
		{"ctrl+y pastes before cursor", "ab", 1, "ctrl+y", "apreviousb", 9, "previous"},
		{"ctrl+y at end", "ab", 2, "ctrl+y", "abprevious", 10, "previous"},
		{"ctrl+u on empty", "", 0, "ctrl+u", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newInsertEditor(tt.text, tt.cursor)
			e.Register().Set("previous")

			press(t, e, tt.key)

			requireState(t, e, tt.wantText, tt.wantCursor, ModeInsert)
			require.Equal(t, tt.wantReg, e.Register().Get())
			require.Equal(t, OpNone, e.PendingOperator())
		})
	}
}

func TestInsert_ChordsAreUndoable(t *testing.T) {
	e := newInsertEditor("hello world", 11)

	press(t, e, "ctrl+w")
	require.Equal(t, "hello ", e.Text())

	press(t, e, "esc", "u")
	require.Equal(t, "hello world", e.Text())
}

func TestInsert_NormalBoundsFlag(t *testing.T) {
	e := withFlags(newInsertEditor("hello", 0), flags.FlagNormalBoundsInInsert)
	press(t, e, "ctrl+e")
	require.Equal(t, 4, e.Cursor(), "ctrl+e stops on the last character")

	e = withFlags(newInsertEditor("hello", 5), flags.FlagNormalBoundsInInsert)
	press(t, e, "ctrl+k")
	require.Equal(t, "hell", e.Text())
	require.Equal(t, "o", e.Register().Get())
}

func TestInsert_ChordKeepsInsertMode(t *testing.T) {
	e := newInsertEditor("abc", 3)
	for _, key := range []string{"ctrl+a", "ctrl+e", "ctrl+b", "ctrl+f"} {
		press(t, e, key)
		require.Equal(t, ModeInsert, e.Mode(), "after %s", key)
	}
}
