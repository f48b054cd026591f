package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/viedit/internal/app"
	"github.com/zjrosen/viedit/internal/clipboard"
	"github.com/zjrosen/viedit/internal/completion"
	"github.com/zjrosen/viedit/internal/config"
	"github.com/zjrosen/viedit/internal/flags"
	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/paths"
	"github.com/zjrosen/viedit/internal/ui/lineedit"
	"github.com/zjrosen/viedit/internal/viedit"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version    = "dev"
	cfgFile    string
	cfg        config.Config
	cfgPath    string
	logCleanup = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "viedit",
	Short: "A single-line prompt with vi-style editing",
	Long: `A single-line prompt with vi-style normal and insert modes, operators,
repeat counts, undo and a shared yank register.

Each submitted line is echoed above the prompt and printed on exit.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) { logCleanup() },
	RunE:              runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .viedit/config.yaml or ~/.config/viedit/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write a debug log (also VIEDIT_DEBUG=1)")
	rootCmd.Flags().Bool("normal", false, "start in normal mode")
	rootCmd.Flags().Bool("insert", false, "start in insert mode")
	rootCmd.Flags().StringSlice("words", nil, "extra completion words")
	rootCmd.MarkFlagsMutuallyExclusive("normal", "insert")
}

// setup loads the config and starts logging. It runs before every command
// except the config subcommands, which work on the file directly.
func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	_ = v.BindPFlag("log.debug", cmd.Flags().Lookup("debug"))
	_ = v.BindEnv("log.debug", "VIEDIT_DEBUG")

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	loaded, path, err := loadConfig(v, wd, cfgFile)
	if err != nil {
		return err
	}
	cfg, cfgPath = loaded, path

	if cfg.Log.Debug {
		cleanup, err := log.Init(cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("starting debug log: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatConfig, "Config loaded", "path", cfgPath, "flags", flags.New(cfg.Flags).EnabledNames())
	}
	return nil
}

// loadConfig resolves, reads and validates the config. When no config file
// exists a commented default is written to .viedit/config.yaml under dir.
func loadConfig(v *viper.Viper, dir, explicit string) (config.Config, string, error) {
	setDefaults(v)

	path, found := paths.ResolveConfig(dir, explicit)
	if !found && explicit == "" {
		// A failed write just means running on defaults.
		if err := config.WriteDefaultConfig(path); err == nil {
			found = true
		}
	}

	if found {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, path, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, path, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, path, nil
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("editor.normal_mode_at_start", d.Editor.NormalModeAtStart)
	v.SetDefault("editor.prompt", d.Editor.Prompt)
	v.SetDefault("completion.provider", d.Completion.Provider)
	v.SetDefault("completion.root", d.Completion.Root)
	v.SetDefault("completion.cache_ttl", d.Completion.CacheTTL)
	v.SetDefault("ui.show_mode", d.UI.ShowMode)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("log.path", d.Log.Path)
	for name, on := range d.Flags {
		v.SetDefault("flags."+name, on)
	}
}

// editorConfig builds the editor settings shared by the prompt and replay.
func editorConfig(startInInsert bool, text string, complete viedit.CompleteFunc) viedit.Config {
	return viedit.Config{
		StartInInsert: startInInsert,
		InitialText:   text,
		Complete:      complete,
		Flags:         flags.New(cfg.Flags),
	}
}

func runApp(cmd *cobra.Command, _ []string) error {
	insert := !cfg.Editor.NormalModeAtStart
	if on, _ := cmd.Flags().GetBool("insert"); on {
		insert = true
	}
	if on, _ := cmd.Flags().GetBool("normal"); on {
		insert = false
	}
	words, _ := cmd.Flags().GetStringSlice("words")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	complete, stopCompletion, err := completion.FromConfig(ctx, cfg.Completion, words)
	if err != nil {
		return fmt.Errorf("setting up completion: %w", err)
	}
	defer stopCompletion()

	if cfg.Register.Clipboard {
		if w, ok := clipboard.System(); ok {
			clipboard.NewMirror(viedit.DefaultRegister, w).Start(ctx)
		} else {
			log.Warn(log.CatClipboard, "No system clipboard available, register.clipboard ignored")
		}
	}

	model := app.New(ctx, app.Options{
		Line: lineedit.Config{
			Prompt:   cfg.Editor.Prompt,
			ShowMode: cfg.UI.ShowMode,
			Editor:   editorConfig(insert, cfg.Editor.InitialText, complete),
		},
	})

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if m, ok := final.(app.Model); ok {
		for _, line := range m.Submitted() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
