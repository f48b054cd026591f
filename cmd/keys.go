package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/viedit/internal/keys"
	"github.com/zjrosen/viedit/internal/ui/markdown"
)

var keysPlain bool

var keysCmd = &cobra.Command{
	Use:   "keys [query]",
	Short: "Show the editor key reference",
	Long: `Show every key the editor understands, grouped by mode.

An optional query fuzzy-filters the list by key or description.

Examples:
  viedit keys
  viedit keys delete
  viedit keys ctrl --plain`,
	Args: cobra.ArbitraryArgs,
	RunE: runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&keysPlain, "plain", false, "print markdown without styling")
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	groups := keys.Search(keys.Reference(), strings.Join(args, " "))
	doc := keys.Markdown(groups)

	if keysPlain {
		_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}

	r, err := markdown.New(cfg.UI.MarkdownStyle, 80)
	if err != nil {
		return err
	}
	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering key reference: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
