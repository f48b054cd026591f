package viedit

import (
	"github.com/google/uuid"

	"github.com/zjrosen/viedit/internal/flags"
	"github.com/zjrosen/viedit/internal/log"
)

// Outcome says whether the editor consumed a key.
type Outcome int

const (
	// Consumed means the editor handled the key completely.
	Consumed Outcome = iota
	// Unhandled means the host should apply its own handling to the key.
	Unhandled
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	if o == Unhandled {
		return "unhandled"
	}
	return "consumed"
}

// Result is returned from HandleKey. Key is set when Outcome is Unhandled.
type Result struct {
	Outcome Outcome
	Key     string
}

// Handled reports whether the key was consumed.
func (r Result) Handled() bool {
	return r.Outcome == Consumed
}

func consumed() Result { return Result{Outcome: Consumed} }

func unhandled(key string) Result { return Result{Outcome: Unhandled, Key: key} }

// Config holds construction options for an Editor.
type Config struct {
	// StartInInsert starts the editor in insert mode. By default it starts
	// in normal mode with the cursor on the last character.
	StartInInsert bool

	// InitialText is the buffer content at construction. It is also the
	// oldest undo snapshot.
	InitialText string

	// Complete is called on tab in insert mode. Nil disables completion.
	Complete CompleteFunc

	// Register is the yank register to share. Nil means DefaultRegister.
	Register *Register

	// Flags toggles optional behaviour. Nil disables every flag.
	Flags *flags.Registry
}

// Editor is a single-line modal editor. It is not safe for concurrent use;
// feed it keys from one goroutine.
type Editor struct {
	id         string
	buf        *Buffer
	mode       Mode
	pending    Operator
	count      int
	countTyped bool
	history    *History
	register   *Register
	completeFn CompleteFunc
	completion CompletionState
	flags      *flags.Registry

	// transient is set while an insert-mode chord runs its normal-mode equivalent.
	transient bool
	// key is the key currently being dispatched.
	key string

	commands *CommandRegistry
	pendings *PendingCommandRegistry
}

// New creates an Editor from cfg.
func New(cfg Config) *Editor {
	reg := cfg.Register
	if reg == nil {
		reg = DefaultRegister
	}

	e := &Editor{
		id:         uuid.NewString(),
		buf:        NewBuffer(cfg.InitialText),
		mode:       ModeInsert,
		count:      1,
		history:    NewHistory(cfg.InitialText),
		register:   reg,
		completeFn: cfg.Complete,
		flags:      cfg.Flags,
		commands:   DefaultRegistry,
		pendings:   DefaultPendingRegistry,
	}
	if !cfg.StartInInsert {
		e.mode = ModeNormal
		e.buf.SetCursor(e.lastIndex())
	}

	log.Debug(log.CatEditor, "Editor created", "editor", e.shortID(), "mode", e.mode, "len", e.buf.Len())
	return e
}

// HandleKey dispatches one key event by mode.
func (e *Editor) HandleKey(key string) Result {
	if e.mode == ModeNormal {
		return e.handleNormalKey(key)
	}
	return e.handleInsertKey(key)
}

func (e *Editor) handleNormalKey(key string) Result {
	if !e.transient || e.flags.Enabled(flags.FlagNormalBoundsInInsert) {
		e.clampNormalCursor()
	}
	e.history.Checkpoint(e.buf.Text())
	e.key = key

	if e.pending != OpNone {
		return e.completeOperator(key)
	}

	cmd, ok := e.commands.Get(ModeNormal, key)
	if !ok {
		e.resetCount()
		e.countTyped = false
		return unhandled(key)
	}
	return e.execute(cmd, key)
}

func (e *Editor) handleInsertKey(key string) Result {
	e.key = key
	cmd, ok := e.commands.Get(ModeInsert, key)
	if !ok {
		return unhandled(key)
	}
	return e.execute(cmd, key)
}

// completeOperator feeds key to the pending operator. A key that is not a
// supported motion cancels the operator without touching the text.
func (e *Editor) completeOperator(key string) Result {
	op := e.pending
	e.pending = OpNone
	e.countTyped = false

	cmd, ok := e.pendings.Get(op, key)
	if !ok {
		log.Debug(log.CatEditor, "Operator cancelled", "editor", e.shortID(), "op", op, "key", key)
		e.finishNormal()
		return consumed()
	}

	cmd.Execute(e)
	if e.flags.Enabled(flags.FlagResetCountAfterOperator) {
		e.resetCount()
	}
	log.Debug(log.CatEditor, "Operator applied", "editor", e.shortID(), "cmd", cmd.ID(), "count", e.count)
	e.finishNormal()
	return consumed()
}

func (e *Editor) execute(cmd Command, key string) Result {
	if cmd.Execute(e) == PassThrough {
		return unhandled(key)
	}
	if _, digit := cmd.(*CountDigitCommand); !digit {
		e.countTyped = false
	}
	if !cmd.KeepsCount() {
		e.resetCount()
	}
	e.finishNormal()
	return consumed()
}

// runTransient executes key as a normal-mode command, with op already
// pending, and returns to insert mode afterwards.
func (e *Editor) runTransient(key string, op Operator) {
	e.transient = true
	e.mode = ModeNormal
	e.pending = op

	e.handleNormalKey(key)

	e.pending = OpNone
	e.mode = ModeInsert
	e.transient = false
}

// applyOperator cuts or copies the text between a and b into the register.
// Change also enters insert mode.
func (e *Editor) applyOperator(op Operator, a, b int) {
	inside, outside := e.buf.Split(a, b)
	e.register.store(op, inside)
	if op == OpDelete || op == OpChange {
		e.buf.SetText(outside)
	}
	if op == OpChange {
		e.setMode(ModeInsert)
	}
}

func (e *Editor) setMode(m Mode) {
	if e.mode == m {
		return
	}
	log.Debug(log.CatEditor, "Mode changed", "editor", e.shortID(), "from", e.mode, "to", m)
	e.mode = m
	if m == ModeInsert {
		e.pending = OpNone
	}
}

func (e *Editor) resetCount() {
	e.count = 1
}

// finishNormal keeps the cursor on a character after a normal-mode command.
func (e *Editor) finishNormal() {
	if e.mode == ModeNormal && !e.transient {
		e.clampNormalCursor()
	}
}

func (e *Editor) clampNormalCursor() {
	if last := max(e.buf.Len()-1, 0); e.buf.Cursor() > last {
		e.buf.SetCursor(last)
	}
}

// lastIndex is the highest offset motions may land on: the last character
// in normal mode, one past it while an insert-mode chord runs.
func (e *Editor) lastIndex() int {
	if e.transient && !e.flags.Enabled(flags.FlagNormalBoundsInInsert) {
		return e.buf.Len()
	}
	return max(e.buf.Len()-1, 0)
}

func (e *Editor) shortID() string {
	return e.id[:8]
}

// ============================================================================
// Accessors
// ============================================================================

// ID returns the editor's unique identifier.
func (e *Editor) ID() string {
	return e.id
}

// Text returns the buffer content.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Cursor returns the cursor offset in runes.
func (e *Editor) Cursor() int {
	return e.buf.Cursor()
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// PendingOperator returns the operator waiting for a motion, or OpNone.
func (e *Editor) PendingOperator() Operator {
	return e.pending
}

// Count returns the repeat count that the next command will use.
func (e *Editor) Count() int {
	return e.count
}

// CompletionState returns the recorded completion, or the zero value.
func (e *Editor) CompletionState() CompletionState {
	return e.completion
}

// Register returns the register this editor reads and writes.
func (e *Editor) Register() *Register {
	return e.register
}

// CanUndo returns true if an older snapshot exists.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if a newer snapshot exists.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// SetText replaces the buffer content, typically to mirror an edit the host
// made for an unhandled key. History is not touched; the next normal-mode key
// records the change.
func (e *Editor) SetText(s string) {
	e.buf.SetText(s)
	e.finishNormal()
}

// SetCursor moves the cursor, clamped for the current mode.
func (e *Editor) SetCursor(pos int) {
	e.buf.SetCursor(pos)
	e.finishNormal()
}

// Reset replaces the content and starts a fresh history, keeping the mode.
func (e *Editor) Reset(text string) {
	e.buf = NewBuffer(text)
	e.history = NewHistory(text)
	e.pending = OpNone
	e.completion = CompletionState{}
	e.resetCount()
	e.countTyped = false
	if e.mode == ModeNormal {
		e.buf.SetCursor(e.lastIndex())
	} else {
		e.buf.SetCursor(e.buf.Len())
	}
}
