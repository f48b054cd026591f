// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectConfig is the config file looked up in the current directory.
const ProjectConfig = ".viedit/config.yaml"

// Expand resolves a leading "~" to the user's home directory.
// Paths without one are returned cleaned but otherwise unchanged.
//
//   - "~" -> "/home/me"
//   - "~/words.txt" -> "/home/me/words.txt"
//   - "./words.txt" -> "words.txt"
func Expand(path string) string {
	if path == "" {
		return ""
	}
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return filepath.Clean(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// UserConfig returns ~/.config/viedit/config.yaml, or "" when the home
// directory is unknown.
func UserConfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "viedit", "config.yaml")
}

// ResolveConfig picks the config file to load.
//
// Lookup order:
//  1. explicit, when non-empty (it need not exist yet)
//  2. .viedit/config.yaml under dir
//  3. ~/.config/viedit/config.yaml
//
// found reports whether the returned file exists. When nothing exists the
// project path under dir is returned so a default can be written there.
func ResolveConfig(dir, explicit string) (path string, found bool) {
	if explicit != "" {
		path = Expand(explicit)
		return path, exists(path)
	}

	project := filepath.Join(dir, ProjectConfig)
	if exists(project) {
		return project, true
	}
	if user := UserConfig(); user != "" && exists(user) {
		return user, true
	}
	return project, false
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
