// Package flags holds named behaviour switches loaded from configuration.
// Flags are read-only after initialization and unknown flags read as disabled.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/viedit/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagResetCountAfterOperator resets the repeat count once an
	// operator+motion sequence completes. Off by default: the count set before
	// the operator stays active for the next command.
	FlagResetCountAfterOperator = "reset-count-after-operator"

	// FlagNormalBoundsInInsert runs insert-mode chords with normal-mode
	// cursor bounds, so ctrl+e lands on the last character instead of past it.
	FlagNormalBoundsInInsert = "normal-bounds-in-insert"
)

// Defaults returns every known flag with its default value.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagResetCountAfterOperator: false,
		FlagNormalBoundsInInsert:    false,
	}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
// If flags is nil, an empty registry is created (all flags disabled).
func New(flags map[string]bool) *Registry {
	r := &Registry{flags: make(map[string]bool, len(flags))}
	maps.Copy(r.flags, flags)
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(r.flags), "enabled", r.EnabledNames())
	return r
}

// Enabled returns true if the named flag is enabled.
// Returns false for unknown flags and on a nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	value, exists := r.flags[name]
	if !exists {
		return false
	}
	return value
}

// EnabledNames returns the sorted names of all enabled flags.
func (r *Registry) EnabledNames() []string {
	if r == nil {
		return nil
	}
	var names []string
	for name, on := range r.flags {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// All returns a copy of all flags.
// Returns an empty map if the registry is nil.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return make(map[string]bool)
	}
	result := make(map[string]bool, len(r.flags))
	maps.Copy(result, r.flags)
	return result
}
