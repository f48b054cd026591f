// Package pubsub fans out typed events to any number of subscribers.
// The yank register publishes through it so the clipboard mirror and the
// status line can follow register writes without the editor knowing about them.
package pubsub

import (
	"context"
	"time"
)

// EventType names the edit that produced an event.
type EventType string

const (
	YankEvent   EventType = "yank"
	DeleteEvent EventType = "delete"
	ChangeEvent EventType = "change"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T) int
}
