package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{
			name:     "known flag set to true returns true",
			registry: New(map[string]bool{FlagResetCountAfterOperator: true}),
			flag:     FlagResetCountAfterOperator,
			expected: true,
		},
		{
			name:     "known flag set to false returns false",
			registry: New(map[string]bool{FlagNormalBoundsInInsert: false}),
			flag:     FlagNormalBoundsInInsert,
			expected: false,
		},
		{
			name:     "unknown flag returns false",
			registry: New(map[string]bool{FlagResetCountAfterOperator: true}),
			flag:     "unknown-flag",
			expected: false,
		},
		{
			name:     "nil registry returns false",
			registry: nil,
			flag:     FlagResetCountAfterOperator,
			expected: false,
		},
		{
			name:     "nil flags map returns false",
			registry: New(nil),
			flag:     FlagResetCountAfterOperator,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestRegistry_EnabledNames(t *testing.T) {
	r := New(map[string]bool{"b": true, "a": true, "c": false})
	require.Equal(t, []string{"a", "b"}, r.EnabledNames())

	var nilRegistry *Registry
	require.Nil(t, nilRegistry.EnabledNames())
}

func TestRegistry_All_ReturnsCopy(t *testing.T) {
	source := map[string]bool{FlagResetCountAfterOperator: true}
	r := New(source)

	// Mutating the source map after construction does not leak in.
	source[FlagNormalBoundsInInsert] = true
	require.False(t, r.Enabled(FlagNormalBoundsInInsert))

	all := r.All()
	all[FlagResetCountAfterOperator] = false
	require.True(t, r.Enabled(FlagResetCountAfterOperator))

	var nilRegistry *Registry
	require.Equal(t, map[string]bool{}, nilRegistry.All())
}

func TestDefaults_AllDisabled(t *testing.T) {
	defaults := Defaults()
	require.Len(t, defaults, 2)
	for name, on := range defaults {
		require.False(t, on, "flag %s should default to off", name)
	}
}
