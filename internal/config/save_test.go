package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func readBack(t *testing.T, path string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	return v
}

func TestSetValue_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SetValue(path, "editor.prompt", "$ "))

	v := readBack(t, path)
	require.Equal(t, "$ ", v.GetString("editor.prompt"))
}

func TestSetValue_UpdatesTemplatePreservingComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SetValue(path, "editor.normal_mode_at_start", "false"))
	require.NoError(t, SetValue(path, "completion.provider", "paths"))
	require.NoError(t, SetValue(path, "flags.reset-count-after-operator", "TRUE"))

	v := readBack(t, path)
	require.False(t, v.GetBool("editor.normal_mode_at_start"))
	require.Equal(t, "paths", v.GetString("completion.provider"))
	require.True(t, v.GetBool("flags.reset-count-after-operator"))
	require.Equal(t, "> ", v.GetString("editor.prompt"), "untouched values survive")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Tab completion (insert mode)")
	require.Contains(t, string(data), "# none, words or paths")
}

func TestSetValue_TypesScalars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SetValue(path, "a.flag", "true"))
	require.NoError(t, SetValue(path, "a.count", "42"))
	require.NoError(t, SetValue(path, "a.word", "yes"))
	require.NoError(t, SetValue(path, "a.duration", "1m"))

	v := readBack(t, path)
	require.Equal(t, true, v.Get("a.flag"))
	require.Equal(t, 42, v.Get("a.count"))
	require.Equal(t, "yes", v.Get("a.word"))
	require.Equal(t, "1m", v.GetString("a.duration"))
}

func TestSetValue_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: plain\n"), 0o644))

	require.Error(t, SetValue(path, "editor.prompt", "x"), "editor is a scalar, not a section")
	require.Error(t, SetValue(path, "editor..prompt", "x"))
	require.Error(t, SetValue(path, "", "x"))

	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o644))
	require.Error(t, SetValue(path, "editor.prompt", "x"))
}
