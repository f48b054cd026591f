// Package viedit implements a modal, single-line editing engine with vi-style
// normal and insert modes, operator+motion composition, repeat counts, undo
// history, a shared yank register and tab completion.
//
// An Editor consumes key names (as produced by tea.KeyMsg.String) one at a
// time and reports whether each key was consumed or should be handled by the
// host text field.
package viedit

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal interprets keys as commands.
	ModeNormal Mode = iota
	// ModeInsert passes most keys through to the host as literal input.
	ModeInsert
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Operator is an action waiting for a motion to supply its range.
type Operator int

const (
	OpNone Operator = iota
	OpChange
	OpDelete
	OpYank
)

// String returns the key that starts the operator.
func (o Operator) String() string {
	switch o {
	case OpChange:
		return "c"
	case OpDelete:
		return "d"
	case OpYank:
		return "y"
	default:
		return ""
	}
}

// Rune returns the operator's key as a rune, or 0 for OpNone.
func (o Operator) Rune() rune {
	s := o.String()
	if s == "" {
		return 0
	}
	return rune(s[0])
}
