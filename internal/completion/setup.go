package completion

import (
	"context"

	"github.com/zjrosen/viedit/internal/config"
	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/paths"
	"github.com/zjrosen/viedit/internal/viedit"
)

// FromConfig builds the completion function selected by cfg. extra words are
// added to the words provider. The returned cleanup stops any file watcher.
// A nil CompleteFunc means completion is off.
func FromConfig(ctx context.Context, cfg config.CompletionConfig, extra []string) (viedit.CompleteFunc, func(), error) {
	noop := func() {}

	switch cfg.Provider {
	case config.ProviderNone:
		return nil, noop, nil

	case config.ProviderPaths:
		root := paths.Expand(cfg.Root)
		if root == "" {
			root = "."
		}
		log.Debug(log.CatCompletion, "Using paths provider", "root", root)
		return Func(ctx, NewPaths(root, cfg.CacheTTL)), noop, nil

	default:
		words := NewWords(append(append([]string{}, cfg.Words...), extra...))
		if cfg.WordsFile == "" {
			log.Debug(log.CatCompletion, "Using words provider", "words", len(cfg.Words)+len(extra))
			return Func(ctx, words), noop, nil
		}
		if err := words.Watch(ctx, paths.Expand(cfg.WordsFile)); err != nil {
			return nil, noop, err
		}
		return Func(ctx, words), func() { _ = words.Close() }, nil
	}
}
