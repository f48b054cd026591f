package completion

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/watcher"
)

// Words completes from a fixed list plus the lines of an optional words
// file. The file can be watched so edits show up without a restart.
type Words struct {
	mu        sync.RWMutex
	static    []string
	fromFile  []string
	path      string
	fsWatcher *watcher.Watcher
	done      chan struct{}
}

// NewWords creates a provider over words.
func NewWords(words []string) *Words {
	return &Words{static: slices.Clone(words)}
}

// LoadFile replaces the file-backed words with the lines of path.
// Blank lines and lines starting with '#' are skipped.
func (w *Words) LoadFile(path string) error {
	words, err := readWords(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.path = path
	w.fromFile = words
	w.mu.Unlock()

	log.Debug(log.CatCompletion, "Loaded words file", "path", path, "count", len(words))
	return nil
}

// Watch loads path and reloads it whenever it changes until ctx is done or
// Close is called.
func (w *Words) Watch(ctx context.Context, path string) error {
	if err := w.LoadFile(path); err != nil {
		return err
	}

	fw, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return fmt.Errorf("watching words file: %w", err)
	}
	changes, err := fw.Start()
	if err != nil {
		_ = fw.Stop()
		return fmt.Errorf("watching words file: %w", err)
	}

	done := make(chan struct{})
	w.mu.Lock()
	w.fsWatcher = fw
	w.done = done
	w.mu.Unlock()

	go func() {
		for {
			select {
			case <-changes:
				if err := w.LoadFile(path); err != nil {
					log.ErrorErr(log.CatCompletion, "Reloading words file failed", err, "path", path)
				}
			case <-ctx.Done():
				_ = w.Close()
				return
			case <-done:
				return
			}
		}
	}()
	return nil
}

// Close stops watching the words file. It is safe to call more than once.
func (w *Words) Close() error {
	w.mu.Lock()
	fw, done := w.fsWatcher, w.done
	w.fsWatcher, w.done = nil, nil
	w.mu.Unlock()

	if fw == nil {
		return nil
	}
	close(done)
	return fw.Stop()
}

// Candidates returns every known word starting with prefix.
func (w *Words) Candidates(_ context.Context, prefix string) ([]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []string
	for _, list := range [][]string{w.static, w.fromFile} {
		for _, word := range list {
			if strings.HasPrefix(word, prefix) {
				out = append(out, word)
			}
		}
	}
	return out, nil
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening words file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}
	return words, nil
}
