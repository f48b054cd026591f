// Package clipboard copies yank register writes to the system clipboard.
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"

	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/pubsub"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type system struct{}

func (system) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// System returns the OS clipboard, or false when no clipboard utility is
// available (for example xclip or wl-copy missing on Linux).
func System() (Writer, bool) {
	if clipboard.Unsupported {
		return nil, false
	}
	return system{}, true
}

// Mirror forwards register events to a Writer.
type Mirror struct {
	source pubsub.Subscriber[string]
	dest   Writer
}

// NewMirror creates a mirror from source to dest. source is normally a
// *viedit.Register.
func NewMirror(source pubsub.Subscriber[string], dest Writer) *Mirror {
	return &Mirror{source: source, dest: dest}
}

// Run copies every non-empty register write to the clipboard until ctx is
// done. Write failures are logged and do not stop the mirror.
func (m *Mirror) Run(ctx context.Context) {
	events := m.source.Subscribe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Payload == "" {
				continue
			}
			if err := m.dest.WriteAll(ev.Payload); err != nil {
				log.ErrorErr(log.CatClipboard, "Clipboard write failed", err, "event", ev.Type)
				continue
			}
			log.Debug(log.CatClipboard, "Copied to clipboard", "event", ev.Type, "len", len(ev.Payload))
		}
	}
}

// Start runs the mirror on its own goroutine.
func (m *Mirror) Start(ctx context.Context) {
	go m.Run(ctx)
}
