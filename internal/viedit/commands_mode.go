package viedit

// ============================================================================
// Mode Entry Commands
// ============================================================================

// InsertCommand enters insert mode at the cursor (i).
type InsertCommand struct {
	ModeEntryBase
}

// Execute switches to insert mode.
func (c *InsertCommand) Execute(e *Editor) ExecuteResult {
	e.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertCommand) Keys() []string {
	return []string{"i"}
}

// ID returns the hierarchical identifier for this command.
func (c *InsertCommand) ID() string {
	return "mode.insert"
}

// AppendCommand enters insert mode one character right of the cursor (a).
type AppendCommand struct {
	ModeEntryBase
}

// Execute moves right and switches to insert mode.
func (c *AppendCommand) Execute(e *Editor) ExecuteResult {
	e.buf.SetCursor(e.buf.Cursor() + 1)
	e.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *AppendCommand) Keys() []string {
	return []string{"a"}
}

// ID returns the hierarchical identifier for this command.
func (c *AppendCommand) ID() string {
	return "mode.append"
}

// InsertLineStartCommand enters insert mode at the start of the line (I).
type InsertLineStartCommand struct {
	ModeEntryBase
}

// Execute moves to line start and switches to insert mode.
func (c *InsertLineStartCommand) Execute(e *Editor) ExecuteResult {
	e.buf.SetCursor(0)
	e.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertLineStartCommand) Keys() []string {
	return []string{"I"}
}

// ID returns the hierarchical identifier for this command.
func (c *InsertLineStartCommand) ID() string {
	return "mode.insert_line_start"
}

// AppendLineEndCommand enters insert mode after the last character (A).
type AppendLineEndCommand struct {
	ModeEntryBase
}

// Execute moves past the end and switches to insert mode.
func (c *AppendLineEndCommand) Execute(e *Editor) ExecuteResult {
	e.buf.SetCursor(e.buf.Len())
	e.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *AppendLineEndCommand) Keys() []string {
	return []string{"A"}
}

// ID returns the hierarchical identifier for this command.
func (c *AppendLineEndCommand) ID() string {
	return "mode.append_line_end"
}

// ChangeToEOLCommand changes from the cursor to the end of the line (C).
type ChangeToEOLCommand struct {
	ModeEntryBase
}

// Execute cuts the rest of the line into the register and enters insert mode.
func (c *ChangeToEOLCommand) Execute(e *Editor) ExecuteResult {
	e.applyOperator(OpChange, e.buf.Cursor(), e.buf.Len())
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ChangeToEOLCommand) Keys() []string {
	return []string{"C"}
}

// ID returns the hierarchical identifier for this command.
func (c *ChangeToEOLCommand) ID() string {
	return "change.to_eol"
}

// CancelCommand discards the repeat count in normal mode (esc).
type CancelCommand struct {
	ModeEntryBase
}

// Execute does nothing; the dispatcher resets the count afterwards.
func (c *CancelCommand) Execute(e *Editor) ExecuteResult {
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CancelCommand) Keys() []string {
	return []string{"esc"}
}

// ID returns the hierarchical identifier for this command.
func (c *CancelCommand) ID() string {
	return "mode.cancel"
}

// ============================================================================
// Pending State Commands
// ============================================================================

// OperatorCommand arms an operator (c, d, y) so the next key supplies its motion.
type OperatorCommand struct {
	PendingBase
	op Operator
}

// Execute records the pending operator.
func (c *OperatorCommand) Execute(e *Editor) ExecuteResult {
	e.pending = c.op
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *OperatorCommand) Keys() []string {
	return []string{c.op.String()}
}

// ID returns the hierarchical identifier for this command.
func (c *OperatorCommand) ID() string {
	return "operator." + c.op.String()
}

// maxCount bounds the repeat count so typed digits cannot overflow.
const maxCount = 9999

// CountDigitCommand accumulates digits 1-9 into the repeat count.
// Consecutive digits build a multi-digit count; a digit after any other key
// starts a new one.
type CountDigitCommand struct {
	PendingBase
}

// Execute folds the digit into the count. The digit itself is read from the
// key being dispatched.
func (c *CountDigitCommand) Execute(e *Editor) ExecuteResult {
	d := int(e.key[0] - '0')
	if e.countTyped {
		e.count = min(e.count*10+d, maxCount)
	} else {
		e.count = d
	}
	e.countTyped = true
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *CountDigitCommand) Keys() []string {
	return []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
}

// ID returns the hierarchical identifier for this command.
func (c *CountDigitCommand) ID() string {
	return "count.digit"
}

// OperatorMotionCommand completes a pending operator with a motion.
// Word-backward and line-start move the cursor to the start of the range
// before it is cut; word-forward and line-end leave it in place.
type OperatorMotionCommand struct {
	PendingBase
	op     Operator
	motion Motion
	keys   []string
}

// Execute computes the range and applies the operator to it.
func (c *OperatorMotionCommand) Execute(e *Editor) ExecuteResult {
	pos := e.buf.Cursor()
	var pos2 int
	switch c.motion {
	case MotionWordForward:
		pos2 = ApplyMotion(MotionWordForward, e.buf.Runes(), pos, e.count, e.lastIndex())
	case MotionWordBackward:
		pos2 = ApplyMotion(MotionWordBackward, e.buf.Runes(), pos, e.count, e.lastIndex())
		e.buf.SetCursor(pos2)
	case MotionLineStart:
		pos2 = 0
		e.buf.SetCursor(0)
	case MotionLineEnd:
		pos2 = e.buf.Len()
	default:
		return Skipped
	}
	e.applyOperator(c.op, pos, pos2)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *OperatorMotionCommand) Keys() []string {
	return c.keys
}

// ID returns the hierarchical identifier for this command.
func (c *OperatorMotionCommand) ID() string {
	return "operator." + c.op.String() + "." + c.motion.String()
}
