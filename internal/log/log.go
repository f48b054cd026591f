// Package log writes levelled, category-tagged lines to a debug log file.
// Nothing is written until Init (or SetOutput) is called, so the editor core
// can log unconditionally.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatEditor     Category = "editor"     // Mode transitions, operators, dispatch
	CatRegister   Category = "register"   // Yank register writes
	CatHistory    Category = "history"    // Undo checkpoints and steps
	CatCompletion Category = "completion" // Completion calls and providers
	CatConfig     Category = "config"     // Configuration loading/saving
	CatCache      Category = "cache"      // Cache operations
	CatWatcher    Category = "watcher"    // File watcher events
	CatUI         Category = "ui"         // UI component updates
	CatClipboard  Category = "clipboard"  // System clipboard mirroring
)

type logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var (
	std     = &logger{minLevel: LevelDebug}
	initMu  sync.Mutex
	initted bool
)

// Init opens path for appending and routes all log output to it.
// Returns a cleanup function that closes the file.
func Init(path string) (func(), error) {
	initMu.Lock()
	defer initMu.Unlock()
	if initted {
		return nil, fmt.Errorf("logger already initialized")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: path is the user-chosen debug log
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	initted = true

	std.mu.Lock()
	std.file = f
	std.writer = f
	std.enabled = true
	std.mu.Unlock()

	return func() {
		std.mu.Lock()
		defer std.mu.Unlock()
		if std.file != nil {
			_ = std.file.Close()
			std.file = nil
		}
		std.writer = nil
		std.enabled = false
	}, nil
}

// SetOutput routes log output to w and enables logging. Passing nil disables it.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	std.writer = w
	std.enabled = w != nil
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	std.mu.Lock()
	std.enabled = enabled
	std.mu.Unlock()
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	std.mu.Lock()
	std.minLevel = level
	std.mu.Unlock()
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	std.mu.Lock()
	defer std.mu.Unlock()

	if !std.enabled || std.writer == nil || level < std.minLevel {
		return
	}

	// Format: 2025-12-06T10:45:00 [DEBUG] [editor] message key=value key2=value2
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(std.writer, b.String())
}
