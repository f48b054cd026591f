package viedit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/viedit/internal/log"
)

// ErrCompletionPrefix is returned when a completion result does not start
// with the text it was asked to complete.
var ErrCompletionPrefix = errors.New("completion result does not extend its input")

// CompletionState describes the most recent completion so repeated tab
// presses can cycle through candidates. The zero value means no completion
// is in progress.
type CompletionState struct {
	// CompletedSuffix is the text the last completion appended.
	CompletedSuffix string
	// CompletionPos is the rune offset where the completed text starts.
	CompletionPos int
	// CursorAtCompletion is the cursor offset right after the last completion.
	CursorAtCompletion int
}

// IsZero reports whether no completion is recorded.
func (s CompletionState) IsZero() bool {
	return s == CompletionState{}
}

// CompleteFunc returns the full replacement for before, which must start with
// before. state is the previous completion when the user is cycling, or the
// zero value when starting fresh.
type CompleteFunc func(before string, state CompletionState) (string, error)

// complete runs one tab-completion step. State is only updated when the
// completion function succeeds. Reports whether the buffer changed.
func (e *Editor) complete() bool {
	if e.completeFn == nil {
		return false
	}

	text := e.buf.Runes()
	pos := e.buf.Cursor()
	before := string(text[:pos])
	after := string(text[pos:])

	state := e.completion
	if !state.IsZero() {
		if state.CompletedSuffix == "" ||
			state.CursorAtCompletion != pos ||
			!strings.HasSuffix(before, state.CompletedSuffix) {
			state = CompletionState{}
		} else {
			before = strings.TrimSuffix(before, state.CompletedSuffix)
		}
	}

	result, err := callComplete(e.completeFn, before, state)
	if err != nil {
		log.Debug(log.CatCompletion, "Completion failed", "editor", e.shortID(), "before", before, "error", err)
		return false
	}

	e.buf.SetText(result + after)
	cursor := utf8.RuneCountInString(result)
	e.buf.SetCursor(cursor)
	e.completion = CompletionState{
		CompletedSuffix:    result[len(before):],
		CompletionPos:      utf8.RuneCountInString(before),
		CursorAtCompletion: cursor,
	}
	log.Debug(log.CatCompletion, "Completed", "editor", e.shortID(), "suffix", e.completion.CompletedSuffix)
	return true
}

func callComplete(fn CompleteFunc, before string, state CompletionState) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completion panicked: %v", r)
		}
	}()

	result, err = fn(before, state)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(result, before) {
		return "", fmt.Errorf("%w: %q", ErrCompletionPrefix, result)
	}
	return result, nil
}
