package viedit

// ============================================================================
// Motion Commands
// ============================================================================

// MoveLeftCommand moves the cursor count characters left (h), stopping at 0.
type MoveLeftCommand struct {
	MotionBase
}

// Execute moves the cursor left.
func (c *MoveLeftCommand) Execute(e *Editor) ExecuteResult {
	if e.buf.Cursor() == 0 {
		return Skipped
	}
	e.buf.SetCursor(max(e.buf.Cursor()-e.count, 0))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveLeftCommand) Keys() []string {
	return []string{"h"}
}

// ID returns the hierarchical identifier for this command.
func (c *MoveLeftCommand) ID() string {
	return "move.left"
}

// MoveRightCommand moves the cursor count characters right (l), never past
// the last character.
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor right.
func (c *MoveRightCommand) Execute(e *Editor) ExecuteResult {
	last := e.lastIndex()
	if e.buf.Cursor() >= last {
		return Skipped
	}
	e.buf.SetCursor(min(e.buf.Cursor()+e.count, last))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []string {
	return []string{"l"}
}

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string {
	return "move.right"
}

// MotionCommand moves the cursor with one of the word or line motions.
type MotionCommand struct {
	MotionBase
	motion Motion
	keys   []string
}

// Execute applies the motion count times.
func (c *MotionCommand) Execute(e *Editor) ExecuteResult {
	pos := ApplyMotion(c.motion, e.buf.Runes(), e.buf.Cursor(), e.count, e.lastIndex())
	e.buf.SetCursor(pos)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MotionCommand) Keys() []string {
	return c.keys
}

// ID returns the hierarchical identifier for this command.
func (c *MotionCommand) ID() string {
	return "move." + c.motion.String()
}
