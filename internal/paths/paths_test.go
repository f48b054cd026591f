package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "~", want: home},
		{in: "~/words.txt", want: filepath.Join(home, "words.txt")},
		{in: "./words.txt", want: "words.txt"},
		{in: "/tmp/../etc/x", want: "/etc/x"},
		{in: "~other/x", want: "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Expand(tt.in))
		})
	}
}

func TestResolveConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()

	path, found := ResolveConfig(dir, "")
	require.False(t, found)
	require.Equal(t, filepath.Join(dir, ProjectConfig), path)

	user := filepath.Join(home, ".config", "viedit", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(user), 0o750))
	require.NoError(t, os.WriteFile(user, []byte("{}\n"), 0o600))

	path, found = ResolveConfig(dir, "")
	require.True(t, found)
	require.Equal(t, user, path)

	project := filepath.Join(dir, ProjectConfig)
	require.NoError(t, os.MkdirAll(filepath.Dir(project), 0o750))
	require.NoError(t, os.WriteFile(project, []byte("{}\n"), 0o600))

	path, found = ResolveConfig(dir, "")
	require.True(t, found, "project config wins over user config")
	require.Equal(t, project, path)

	path, found = ResolveConfig(dir, "~/custom.yaml")
	require.False(t, found)
	require.Equal(t, filepath.Join(home, "custom.yaml"), path)
}
