package completion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/viedit/internal/cachemanager"
)

// Paths completes file system paths relative to a root directory.
// Directory listings are cached for a short time so cycling through
// candidates does not hit the disk on every tab.
type Paths struct {
	root     string
	listings *cachemanager.ReadThroughCache[string, []string]
}

// NewPaths creates a provider rooted at root. A ttl of 0 uses the cache default.
func NewPaths(root string, ttl time.Duration) *Paths {
	cache := cachemanager.NewInMemoryCacheManager[string, []string](
		"completion.paths", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	return &Paths{
		root:     root,
		listings: cachemanager.NewReadThroughCache[string, []string](cache, listDir, ttl),
	}
}

// Candidates lists entries of the directory named by prefix whose names
// start with the part of prefix after its last slash. Directories get a
// trailing slash. Hidden entries are only offered when that part starts
// with a dot.
func (p *Paths) Candidates(ctx context.Context, prefix string) ([]string, error) {
	dirPart, base := "", prefix
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		dirPart, base = prefix[:i+1], prefix[i+1:]
	}

	dir := dirPart
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.root, dirPart)
	}

	names, err := p.listings.Get(ctx, filepath.Clean(dir))
	if err != nil {
		return nil, err
	}

	var out []string
	for _, name := range names {
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		out = append(out, dirPart+name)
	}
	return out, nil
}

// Invalidate drops the cached listing for dir.
func (p *Paths) Invalidate(ctx context.Context, dir string) {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(p.root, dir)
	}
	p.listings.Invalidate(ctx, filepath.Clean(dir))
}

// listDir returns entry names of dir; a missing directory lists as empty.
func listDir(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}
