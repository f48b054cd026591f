package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zjrosen/viedit/internal/completion"
	"github.com/zjrosen/viedit/internal/viedit"
)

var (
	replayText   string
	replayInsert bool
	replayDiff   bool
	replayScript string
)

var replayCmd = &cobra.Command{
	Use:   "replay [KEY...]",
	Short: "Run a key sequence without a terminal and print the result",
	Long: `Run a key sequence against a fresh editor and print the final text,
cursor, mode and register.

Keys use the same names as the interactive prompt: single characters,
esc, tab, backspace, left, right, home, end, ctrl+a ... ctrl+y and ctrl+r.
Use "space" for a space. Keys the editor does not handle are applied the way
the prompt's text field would: typed in insert mode, cursor keys in normal
mode, otherwise ignored.

Examples:
  # Delete the first word
  viedit replay --text "hello world" 0 d w

  # Type in insert mode, then undo from normal mode
  viedit replay --insert a b c esc u

  # Keys from a file, one or more per line, '#' starts a comment
  viedit replay --text "git status" --script keys.txt --diff`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayText, "text", "t", "", "initial text")
	replayCmd.Flags().BoolVarP(&replayInsert, "insert", "i", false, "start in insert mode")
	replayCmd.Flags().BoolVar(&replayDiff, "diff", false, "show a word diff of the initial and final text")
	replayCmd.Flags().StringVarP(&replayScript, "script", "s", "", "read keys from a file")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	keySeq := args
	if replayScript != "" {
		fromFile, err := readScript(replayScript)
		if err != nil {
			return err
		}
		keySeq = append(fromFile, keySeq...)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	complete, stopCompletion, err := completion.FromConfig(ctx, cfg.Completion, nil)
	if err != nil {
		return fmt.Errorf("setting up completion: %w", err)
	}
	defer stopCompletion()

	ecfg := editorConfig(replayInsert, replayText, complete)
	ecfg.Register = viedit.NewRegister()
	e := viedit.New(ecfg)

	for _, k := range keySeq {
		k = keyName(k)
		if res := e.HandleKey(k); !res.Handled() {
			applyHostKey(e, res.Key)
		}
	}

	return printReplay(cmd.OutOrStdout(), e, replayText)
}

// readScript returns the whitespace-separated keys of path, skipping '#' comments.
func readScript(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-supplied script path
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		out = append(out, strings.Fields(line)...)
	}
	return out, nil
}

func keyName(k string) string {
	if k == "space" {
		return " "
	}
	return k
}

// applyHostKey does what the prompt's text field does with a key the
// editor left unhandled.
func applyHostKey(e *viedit.Editor, k string) {
	text := []rune(e.Text())
	pos := e.Cursor()

	switch k {
	case "left":
		e.SetCursor(pos - 1)
	case "right":
		e.SetCursor(pos + 1)
	case "home":
		e.SetCursor(0)
	case "end":
		e.SetCursor(len(text))
	case "backspace":
		if e.Mode() == viedit.ModeInsert && pos > 0 {
			e.SetText(string(text[:pos-1]) + string(text[pos:]))
			e.SetCursor(pos - 1)
		}
	default:
		if e.Mode() != viedit.ModeInsert || utf8.RuneCountInString(k) != 1 {
			return
		}
		e.SetText(string(text[:pos]) + k + string(text[pos:]))
		e.SetCursor(pos + 1)
	}
}

func printReplay(w io.Writer, e *viedit.Editor, initial string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "text:     %s\n", strconv.Quote(e.Text()))
	fmt.Fprintf(&sb, "cursor:   %d\n", e.Cursor())
	fmt.Fprintf(&sb, "mode:     %s\n", e.Mode())
	fmt.Fprintf(&sb, "register: %s\n", strconv.Quote(e.Register().Get()))
	if replayDiff {
		fmt.Fprintf(&sb, "diff:     %s\n", wordDiff(initial, e.Text()))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// wordDiff renders the change from a to b as "[-removed-]{+added+}".
func wordDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
