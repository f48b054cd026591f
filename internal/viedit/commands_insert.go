package viedit

// ============================================================================
// Insert Mode Commands
// ============================================================================

// EscapeCommand leaves insert mode (esc). The cursor steps back one
// character and any pending operator is dropped.
type EscapeCommand struct {
	InsertBase
}

// Execute returns to normal mode.
func (c *EscapeCommand) Execute(e *Editor) ExecuteResult {
	e.buf.SetCursor(e.buf.Cursor() - 1)
	e.pending = OpNone
	e.setMode(ModeNormal)
	e.clampNormalCursor()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EscapeCommand) Keys() []string {
	return []string{"esc"}
}

// ID returns the hierarchical identifier for this command.
func (c *EscapeCommand) ID() string {
	return "mode.normal"
}

// ChordCommand runs a normal-mode key, optionally with an operator already
// pending, without leaving insert mode. It backs the emacs-style chords.
type ChordCommand struct {
	InsertBase
	key       string
	normalKey string
	op        Operator
	id        string
}

// Execute runs the normal-mode equivalent transiently.
func (c *ChordCommand) Execute(e *Editor) ExecuteResult {
	e.runTransient(c.normalKey, c.op)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ChordCommand) Keys() []string {
	return []string{c.key}
}

// ID returns the hierarchical identifier for this command.
func (c *ChordCommand) ID() string {
	return c.id
}

// emacsChords maps insert-mode chords to their normal-mode equivalents.
var emacsChords = []*ChordCommand{
	{key: "ctrl+a", normalKey: "0", id: "chord.line_start"},
	{key: "ctrl+e", normalKey: "$", id: "chord.line_end"},
	{key: "ctrl+u", normalKey: "0", op: OpDelete, id: "chord.delete_to_line_start"},
	{key: "ctrl+k", normalKey: "$", op: OpDelete, id: "chord.delete_to_line_end"},
	{key: "ctrl+y", normalKey: "P", id: "chord.paste"},
	{key: "ctrl+w", normalKey: "b", op: OpDelete, id: "chord.delete_word_backward"},
	{key: "ctrl+b", normalKey: "b", id: "chord.word_backward"},
	{key: "ctrl+f", normalKey: "w", id: "chord.word_forward"},
}

// TabCompleteCommand asks the completion function to extend the text before
// the cursor (tab).
type TabCompleteCommand struct {
	InsertBase
}

// Execute runs one completion step.
func (c *TabCompleteCommand) Execute(e *Editor) ExecuteResult {
	if !e.complete() {
		return Skipped
	}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *TabCompleteCommand) Keys() []string {
	return []string{"tab"}
}

// ID returns the hierarchical identifier for this command.
func (c *TabCompleteCommand) ID() string {
	return "completion.tab"
}
