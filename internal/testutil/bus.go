package testutil

import (
	"context"
	"sync"

	"github.com/edupet/engine/internal/event"
)

// RecordingBus is an event.Bus that records every published event.
type RecordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

// NewRecordingBus creates an empty recording bus.
func NewRecordingBus() *RecordingBus {
	return &RecordingBus{}
}

func (b *RecordingBus) Publish(ctx context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return nil
}

func (b *RecordingBus) Subscribe(eventType event.Type, handler event.Handler) {}

// Events returns the published events in order.
func (b *RecordingBus) Events() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]event.Event(nil), b.events...)
}

// EventsOfType returns only the events of the given type.
func (b *RecordingBus) EventsOfType(t event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, e := range b.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
