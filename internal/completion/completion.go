// Package completion provides tab-completion providers for the line editor.
//
// A Provider lists candidates for the word under the cursor. Func adapts a
// Provider to viedit.CompleteFunc, replacing that word with the first
// candidate and advancing to the next one on repeated tab presses.
package completion

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/zjrosen/viedit/internal/viedit"
)

// ErrNoCandidates is returned when nothing completes the current word.
var ErrNoCandidates = errors.New("no completion candidates")

// Provider lists completion candidates starting with prefix.
type Provider interface {
	Candidates(ctx context.Context, prefix string) ([]string, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(ctx context.Context, prefix string) ([]string, error)

// Candidates calls f.
func (f ProviderFunc) Candidates(ctx context.Context, prefix string) ([]string, error) {
	return f(ctx, prefix)
}

// Func returns a CompleteFunc that completes the last whitespace-separated
// word of its input using p. Candidates are sorted and deduplicated. With a
// non-zero state the candidate after the previously inserted one is used,
// wrapping around at the end.
func Func(ctx context.Context, p Provider) viedit.CompleteFunc {
	return func(before string, state viedit.CompletionState) (string, error) {
		start := wordStart(before)
		word := before[start:]

		found, err := p.Candidates(ctx, word)
		if err != nil {
			return "", err
		}
		candidates := normalize(found, word)
		if len(candidates) == 0 {
			return "", ErrNoCandidates
		}

		next := 0
		if !state.IsZero() {
			if i := slices.Index(candidates, word+state.CompletedSuffix); i >= 0 {
				next = (i + 1) % len(candidates)
			}
		}
		return before[:start] + candidates[next], nil
	}
}

// normalize keeps candidates that strictly extend word, sorted and unique.
func normalize(found []string, word string) []string {
	out := make([]string, 0, len(found))
	for _, c := range found {
		if len(c) > len(word) && strings.HasPrefix(c, word) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// wordStart returns the byte offset where the last word of s begins.
func wordStart(s string) int {
	return strings.LastIndexAny(s, " \t") + 1
}
