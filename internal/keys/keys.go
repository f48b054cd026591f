// Package keys contains keybinding definitions.
//
// KeyMap holds the bindings the application handles itself. Reference
// describes the editor's own keys for help output; those are dispatched by
// the viedit registries, not matched here.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit line"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear history"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c/d", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.Help, k.Quit},
		bindings(NormalMotions),
		bindings(NormalEdits),
		bindings(InsertChords),
	}
}

// Group is a titled set of editor bindings for help output.
type Group struct {
	Title    string
	Mode     string
	Bindings []key.Binding
}

func bindings(g Group) []key.Binding {
	return g.Bindings
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// NormalMotions move the cursor in normal mode.
var NormalMotions = Group{
	Title: "Motions",
	Mode:  "NORMAL",
	Bindings: []key.Binding{
		bind("h", "left", "h"),
		bind("l", "right", "l"),
		bind("w/W", "next word", "w", "W"),
		bind("b/B", "previous word", "b", "B"),
		bind("e/E", "end of word", "e", "E"),
		bind("0", "line start", "0"),
		bind("$", "line end", "$"),
		bind("1-9", "repeat count", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
	},
}

// NormalEdits change the text in normal mode.
var NormalEdits = Group{
	Title: "Edits",
	Mode:  "NORMAL",
	Bindings: []key.Binding{
		bind("x", "delete character", "x"),
		bind("p", "paste after cursor", "p"),
		bind("P", "paste before cursor", "P"),
		bind("u", "undo", "u"),
		bind("ctrl+r", "redo", "ctrl+r"),
		bind("esc", "cancel count", "esc"),
	},
}

// NormalModeEntry switch to insert mode.
var NormalModeEntry = Group{
	Title: "Insert",
	Mode:  "NORMAL",
	Bindings: []key.Binding{
		bind("i", "insert before cursor", "i"),
		bind("a", "append after cursor", "a"),
		bind("I", "insert at line start", "I"),
		bind("A", "append at line end", "A"),
		bind("C", "change to line end", "C"),
	},
}

// Operators wait for one of OperatorMotions.
var Operators = Group{
	Title: "Operators",
	Mode:  "NORMAL",
	Bindings: []key.Binding{
		bind("d", "delete", "d"),
		bind("c", "change", "c"),
		bind("y", "yank", "y"),
	},
}

// OperatorMotions complete a pending operator. Any other key cancels it.
var OperatorMotions = Group{
	Title: "Operator targets",
	Mode:  "NORMAL",
	Bindings: []key.Binding{
		bind("w/W", "to next word", "w", "W"),
		bind("b/B", "to previous word", "b", "B"),
		bind("0", "to line start", "0"),
		bind("$", "to line end", "$"),
	},
}

// InsertChords are the insert-mode keys the editor handles. Everything else
// is typed into the line.
var InsertChords = Group{
	Title: "Insert mode",
	Mode:  "INSERT",
	Bindings: []key.Binding{
		bind("esc", "normal mode", "esc"),
		bind("tab", "complete", "tab"),
		bind("ctrl+a", "line start", "ctrl+a"),
		bind("ctrl+e", "line end", "ctrl+e"),
		bind("ctrl+b", "previous word", "ctrl+b"),
		bind("ctrl+f", "next word", "ctrl+f"),
		bind("ctrl+w", "delete previous word", "ctrl+w"),
		bind("ctrl+u", "delete to line start", "ctrl+u"),
		bind("ctrl+k", "delete to line end", "ctrl+k"),
		bind("ctrl+y", "paste", "ctrl+y"),
	},
}

// Reference returns every editor group in display order.
func Reference() []Group {
	return []Group{NormalMotions, NormalEdits, NormalModeEntry, Operators, OperatorMotions, InsertChords}
}
