package viedit

import (
	"context"
	"sync"

	"github.com/zjrosen/viedit/internal/log"
	"github.com/zjrosen/viedit/internal/pubsub"
)

// DefaultRegister is the yank register shared by every Editor in the process
// unless Config.Register names another one. It starts empty and lives for the
// life of the process.
var DefaultRegister = NewRegister()

// Register is a single text slot written by delete, change and yank and read
// by paste. Every write is published to subscribers.
type Register struct {
	mu     sync.RWMutex
	text   string
	broker *pubsub.Broker[string]
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	return &Register{broker: pubsub.NewBroker[string]()}
}

// Get returns the register contents.
func (r *Register) Get() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.text
}

// Set stores text as if it had been yanked.
func (r *Register) Set(text string) {
	r.store(OpYank, text)
}

// Subscribe returns a channel of register writes. The event type names the
// operator that wrote the text.
func (r *Register) Subscribe(ctx context.Context) <-chan pubsub.Event[string] {
	return r.broker.Subscribe(ctx)
}

func (r *Register) store(op Operator, text string) {
	r.mu.Lock()
	r.text = text
	r.mu.Unlock()

	n := r.broker.Publish(eventTypeFor(op), text)
	log.Debug(log.CatRegister, "Register written", "op", op, "len", len(text), "subscribers", n)
}

func eventTypeFor(op Operator) pubsub.EventType {
	switch op {
	case OpDelete:
		return pubsub.DeleteEvent
	case OpChange:
		return pubsub.ChangeEvent
	default:
		return pubsub.YankEvent
	}
}
