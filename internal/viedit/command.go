package viedit

// ExecuteResult indicates the outcome of command execution.
type ExecuteResult int

const (
	// Executed means the command ran and consumed the key.
	Executed ExecuteResult = iota
	// PassThrough means the command declined the key; the host should handle it.
	PassThrough
	// Skipped means pre-conditions weren't met (e.g. x on an empty buffer).
	// The key is still consumed.
	Skipped
)

// Command is a single-key action bound to a mode.
type Command interface {
	// Execute applies the command to the editor.
	Execute(e *Editor) ExecuteResult

	// Keys returns the key names that trigger this command.
	Keys() []string

	// Mode returns which mode this command is registered in.
	Mode() Mode

	// ID returns a hierarchical identifier such as "move.left" or "delete.char".
	ID() string

	// KeepsCount reports whether the repeat count survives execution.
	// Standalone commands consume it; digits and operator keys do not.
	KeepsCount() bool
}

// ============================================================================
// Base structs for reducing boilerplate in Command implementations
// ============================================================================

// MotionBase provides defaults for normal-mode cursor motions.
type MotionBase struct{}

func (MotionBase) Mode() Mode       { return ModeNormal }
func (MotionBase) KeepsCount() bool { return false }

// EditBase provides defaults for normal-mode commands that change the text.
type EditBase struct{}

func (EditBase) Mode() Mode       { return ModeNormal }
func (EditBase) KeepsCount() bool { return false }

// ModeEntryBase provides defaults for commands that switch modes.
type ModeEntryBase struct{}

func (ModeEntryBase) Mode() Mode       { return ModeNormal }
func (ModeEntryBase) KeepsCount() bool { return false }

// PendingBase provides defaults for commands that build up state for the
// next key: operator keys, count digits and completed operator sequences.
type PendingBase struct{}

func (PendingBase) Mode() Mode       { return ModeNormal }
func (PendingBase) KeepsCount() bool { return true }

// InsertBase provides defaults for insert-mode chords.
type InsertBase struct{}

func (InsertBase) Mode() Mode       { return ModeInsert }
func (InsertBase) KeepsCount() bool { return false }

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry provides mode-aware, key-based command dispatch.
type CommandRegistry struct {
	// commands maps Mode -> key -> command
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[Mode]map[string]Command),
	}
}

// Register adds a command under each of its Keys() in its Mode().
func (r *CommandRegistry) Register(cmd Command) {
	mode := cmd.Mode()
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Get retrieves a command for a specific mode and key.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	cmd, ok := r.commands[mode][key]
	return cmd, ok
}

// Commands returns every registered command for a mode, keyed by key name.
func (r *CommandRegistry) Commands(mode Mode) map[string]Command {
	out := make(map[string]Command, len(r.commands[mode]))
	for key, cmd := range r.commands[mode] {
		out[key] = cmd
	}
	return out
}

// ============================================================================
// PendingCommandRegistry - operator + motion dispatch
// ============================================================================

// PendingCommandRegistry maps (operator, motion key) to the command that
// completes the operator.
type PendingCommandRegistry struct {
	commands map[Operator]map[string]Command
}

// NewPendingCommandRegistry creates an empty pending command registry.
func NewPendingCommandRegistry() *PendingCommandRegistry {
	return &PendingCommandRegistry{
		commands: make(map[Operator]map[string]Command),
	}
}

// Register adds a command for an operator under each of its Keys().
func (r *PendingCommandRegistry) Register(op Operator, cmd Command) {
	if r.commands[op] == nil {
		r.commands[op] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[op][key] = cmd
	}
}

// Get retrieves the command completing op for key.
func (r *PendingCommandRegistry) Get(op Operator, key string) (Command, bool) {
	cmd, ok := r.commands[op][key]
	return cmd, ok
}

// ============================================================================
// Default Registries
// ============================================================================

// DefaultRegistry holds every single-key command in both modes.
var DefaultRegistry = newDefaultRegistry()

// DefaultPendingRegistry holds every operator+motion combination.
var DefaultPendingRegistry = newDefaultPendingRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Motions
	r.Register(&MoveLeftCommand{})
	r.Register(&MoveRightCommand{})
	r.Register(&MotionCommand{motion: MotionLineStart, keys: []string{"0"}})
	r.Register(&MotionCommand{motion: MotionLineEnd, keys: []string{"$"}})
	r.Register(&MotionCommand{motion: MotionWordForward, keys: []string{"w", "W"}})
	r.Register(&MotionCommand{motion: MotionWordBackward, keys: []string{"b", "B"}})
	r.Register(&MotionCommand{motion: MotionWordEnd, keys: []string{"e", "E"}})

	// Edits
	r.Register(&DeleteCharCommand{})
	r.Register(&PasteCommand{after: true})
	r.Register(&PasteCommand{after: false})
	r.Register(&UndoCommand{})
	r.Register(&RedoCommand{})

	// Mode entry
	r.Register(&InsertCommand{})
	r.Register(&AppendCommand{})
	r.Register(&InsertLineStartCommand{})
	r.Register(&AppendLineEndCommand{})
	r.Register(&ChangeToEOLCommand{})
	r.Register(&CancelCommand{})

	// Pending state
	r.Register(&OperatorCommand{op: OpChange})
	r.Register(&OperatorCommand{op: OpDelete})
	r.Register(&OperatorCommand{op: OpYank})
	r.Register(&CountDigitCommand{})

	// Insert mode
	r.Register(&EscapeCommand{})
	r.Register(&TabCompleteCommand{})
	for _, chord := range emacsChords {
		r.Register(chord)
	}

	return r
}

func newDefaultPendingRegistry() *PendingCommandRegistry {
	r := NewPendingCommandRegistry()

	// Word-end has no entry here: "de", "ce" and "ye" cancel the operator.
	for _, op := range []Operator{OpChange, OpDelete, OpYank} {
		r.Register(op, &OperatorMotionCommand{op: op, motion: MotionWordForward, keys: []string{"w", "W"}})
		r.Register(op, &OperatorMotionCommand{op: op, motion: MotionWordBackward, keys: []string{"b", "B"}})
		r.Register(op, &OperatorMotionCommand{op: op, motion: MotionLineStart, keys: []string{"0"}})
		r.Register(op, &OperatorMotionCommand{op: op, motion: MotionLineEnd, keys: []string{"$"}})
	}

	return r
}
