package viedit

// DeleteCharCommand deletes count characters starting at the cursor (x).
// On the last character the window shifts one left first. The register is
// left untouched.
type DeleteCharCommand struct {
	EditBase
}

// Execute deletes characters under the cursor.
func (c *DeleteCharCommand) Execute(e *Editor) ExecuteResult {
	n := e.buf.Len()
	if n == 0 {
		return Skipped
	}
	pos := e.buf.Cursor()
	if pos >= n-1 {
		pos = max(n-2, 0)
	}
	_, outside := e.buf.Split(pos, min(pos+e.count, n))
	e.buf.SetText(outside)
	e.buf.SetCursor(pos)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteCharCommand) Keys() []string {
	return []string{"x"}
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteCharCommand) ID() string {
	return "delete.char"
}

// PasteCommand inserts the register after (p) or before (P) the cursor and
// leaves the cursor just past the inserted text.
type PasteCommand struct {
	EditBase
	after bool
}

// Execute inserts the register contents.
func (c *PasteCommand) Execute(e *Editor) ExecuteResult {
	text := e.register.Get()
	if text == "" {
		return Skipped
	}
	pos := e.buf.Cursor()
	if c.after && e.buf.Len() > 0 {
		pos++
	}
	e.buf.Insert(pos, text)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *PasteCommand) Keys() []string {
	if c.after {
		return []string{"p"}
	}
	return []string{"P"}
}

// ID returns the hierarchical identifier for this command.
func (c *PasteCommand) ID() string {
	if c.after {
		return "paste.after"
	}
	return "paste.before"
}

// UndoCommand restores the previous snapshot (u). The cursor stays put,
// clamped to the restored text.
type UndoCommand struct {
	EditBase
}

// Execute steps history back.
func (c *UndoCommand) Execute(e *Editor) ExecuteResult {
	text, ok := e.history.Undo()
	if !ok {
		return Skipped
	}
	e.buf.SetText(text)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *UndoCommand) Keys() []string {
	return []string{"u"}
}

// ID returns the hierarchical identifier for this command.
func (c *UndoCommand) ID() string {
	return "history.undo"
}

// RedoCommand re-applies the next snapshot (ctrl+r).
type RedoCommand struct {
	EditBase
}

// Execute steps history forward.
func (c *RedoCommand) Execute(e *Editor) ExecuteResult {
	text, ok := e.history.Redo()
	if !ok {
		return Skipped
	}
	e.buf.SetText(text)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *RedoCommand) Keys() []string {
	return []string{"ctrl+r"}
}

// ID returns the hierarchical identifier for this command.
func (c *RedoCommand) ID() string {
	return "history.redo"
}
