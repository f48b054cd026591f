package viedit

import "github.com/zjrosen/viedit/internal/log"

// History is a list of text snapshots with a current index.
// The first snapshot is the text the editor was created with and is never
// discarded. Cursor positions are not recorded.
type History struct {
	snapshots []string
	index     int
}

// NewHistory creates a history whose only snapshot is initial.
func NewHistory(initial string) *History {
	return &History{snapshots: []string{initial}}
}

// Checkpoint records text as a new snapshot when it differs from the current
// one, discarding any snapshots after the current index. It reports whether a
// snapshot was added.
func (h *History) Checkpoint(text string) bool {
	if h.snapshots[h.index] == text {
		return false
	}
	h.snapshots = append(h.snapshots[:h.index+1], text)
	h.index = len(h.snapshots) - 1
	log.Debug(log.CatHistory, "Checkpoint", "index", h.index)
	return true
}

// Undo steps back one snapshot and returns its text.
// Returns false when already at the first snapshot.
func (h *History) Undo() (string, bool) {
	if h.index == 0 {
		return "", false
	}
	h.index--
	log.Debug(log.CatHistory, "Undo", "index", h.index)
	return h.snapshots[h.index], true
}

// Redo steps forward one snapshot and returns its text.
// Returns false when already at the newest snapshot.
func (h *History) Redo() (string, bool) {
	if h.index >= len(h.snapshots)-1 {
		return "", false
	}
	h.index++
	log.Debug(log.CatHistory, "Redo", "index", h.index)
	return h.snapshots[h.index], true
}

// Current returns the snapshot at the current index.
func (h *History) Current() string {
	return h.snapshots[h.index]
}

// Index returns the current index.
func (h *History) Index() int {
	return h.index
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// CanUndo returns true if there is an older snapshot.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo returns true if there is a newer snapshot.
func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}
