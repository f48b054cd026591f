package completion

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWords_Candidates(t *testing.T) {
	w := NewWords([]string{"alpha", "beta", "alphabet"})

	got, err := w.Candidates(context.Background(), "al")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "alphabet"}, got)

	got, err = w.Candidates(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestWords_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nstash\n\n  status  \n"), 0o644))

	w := NewWords([]string{"show"})
	require.NoError(t, w.LoadFile(path))

	got, err := w.Candidates(context.Background(), "s")
	require.NoError(t, err)
	require.Equal(t, []string{"show", "stash", "status"}, got)
}

func TestWords_LoadFileMissing(t *testing.T) {
	w := NewWords(nil)
	err := w.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "opening words file")
}

func TestWords_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	w := NewWords(nil)
	require.NoError(t, w.Watch(context.Background(), path))
	t.Cleanup(func() { _ = w.Close() })

	got, _ := w.Candidates(context.Background(), "t")
	require.Empty(t, got)

	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	require.Eventually(t, func() bool {
		got, _ := w.Candidates(context.Background(), "t")
		return len(got) == 1 && got[0] == "two"
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWords_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	w := NewWords(nil)
	require.NoError(t, w.Close())
	require.NoError(t, w.Watch(context.Background(), path))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestWords_StopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWords(nil)
	require.NoError(t, w.Watch(ctx, path))

	cancel()
	require.Eventually(t, func() bool {
		w.mu.RLock()
		defer w.mu.RUnlock()
		return w.fsWatcher == nil
	}, time.Second, 10*time.Millisecond)
}
