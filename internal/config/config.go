// Package config provides configuration types and defaults for viedit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/zjrosen/viedit/internal/flags"
	"github.com/zjrosen/viedit/internal/log"
)

// Completion provider names.
const (
	ProviderNone  = "none"
	ProviderWords = "words"
	ProviderPaths = "paths"
)

// Config holds all configuration options for viedit.
type Config struct {
	Editor     EditorConfig     `mapstructure:"editor"`
	Completion CompletionConfig `mapstructure:"completion"`
	Register   RegisterConfig   `mapstructure:"register"`
	UI         UIConfig         `mapstructure:"ui"`
	Log        LogConfig        `mapstructure:"log"`
	Flags      map[string]bool  `mapstructure:"flags"`
}

// EditorConfig holds options for the line editor itself.
type EditorConfig struct {
	NormalModeAtStart bool   `mapstructure:"normal_mode_at_start"` // Start in normal mode (default: true)
	Prompt            string `mapstructure:"prompt"`               // Text shown before the input line
	InitialText       string `mapstructure:"initial_text"`         // Buffer content at startup
}

// CompletionConfig selects and configures the tab-completion provider.
type CompletionConfig struct {
	// Provider is "none", "words" (default) or "paths".
	Provider string `mapstructure:"provider"`

	// Words are completion candidates for the words provider.
	Words []string `mapstructure:"words"`

	// WordsFile is a file with one candidate per line. It is watched and
	// reloaded when it changes.
	WordsFile string `mapstructure:"words_file"`

	// Root is the directory relative paths are resolved against for the paths provider.
	Root string `mapstructure:"root"`

	// CacheTTL is how long directory listings are cached by the paths provider.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RegisterConfig holds yank register options.
type RegisterConfig struct {
	Clipboard bool `mapstructure:"clipboard"` // Mirror register writes to the system clipboard
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowMode      bool   `mapstructure:"show_mode"`      // Show the NORMAL/INSERT indicator
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// LogConfig holds debug logging options.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Path  string `mapstructure:"path"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			NormalModeAtStart: true,
			Prompt:            "> ",
		},
		Completion: CompletionConfig{
			Provider: ProviderWords,
			Root:     ".",
			CacheTTL: 30 * time.Second,
		},
		UI: UIConfig{
			ShowMode:      true,
			MarkdownStyle: "dark",
		},
		Log: LogConfig{
			Path: "debug.log",
		},
		Flags: flags.Defaults(),
	}
}

// Validate checks every section and returns the first problem found.
func (c Config) Validate() error {
	if err := ValidateCompletion(c.Completion); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	return ValidateFlags(c.Flags)
}

// ValidateCompletion checks the completion section.
func ValidateCompletion(c CompletionConfig) error {
	switch c.Provider {
	case "", ProviderNone, ProviderWords, ProviderPaths:
	default:
		return fmt.Errorf("completion.provider: unknown provider %q (want none, words or paths)", c.Provider)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("completion.cache_ttl: must not be negative, got %s", c.CacheTTL)
	}
	if c.Provider == ProviderPaths && c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil {
			return fmt.Errorf("completion.root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("completion.root: %s is not a directory", c.Root)
		}
	}
	return nil
}

// ValidateUI checks the ui section.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style: must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateFlags rejects flag names viedit does not know.
func ValidateFlags(m map[string]bool) error {
	known := flags.Defaults()
	var unknown []string
	for name := range m {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("flags: unknown flag(s) %v", unknown)
	}
	return nil
}

// DefaultConfigTemplate returns a commented YAML config with the default values.
func DefaultConfigTemplate() string {
	return `# viedit configuration

editor:
  normal_mode_at_start: true   # Start in normal mode; false starts in insert mode
  prompt: "> "                 # Text shown before the input line
  # initial_text: ""           # Buffer content at startup

# Tab completion (insert mode)
completion:
  provider: words   # none, words or paths
  # words:          # Candidates for the words provider
  #   - commit
  #   - checkout
  # words_file: ~/.config/viedit/words.txt   # One word per line, reloaded on change
  root: "."         # Base directory for the paths provider
  cache_ttl: 30s    # How long directory listings are cached

# Yank register
register:
  clipboard: false  # Mirror yanks and deletes to the system clipboard

ui:
  show_mode: true        # Show the NORMAL/INSERT indicator
  markdown_style: dark   # Style for 'viedit keys': dark or light

log:
  debug: false       # Same as --debug or VIEDIT_DEBUG=1
  path: debug.log

# Behaviour switches
flags:
  # Reset the repeat count after an operator+motion such as 2dw.
  # Off keeps the count active for the next command.
  reset-count-after-operator: false
  # Run insert-mode chords (ctrl+e, ctrl+k, ...) with normal-mode bounds,
  # so ctrl+e stops on the last character.
  normal-bounds-in-insert: false
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
