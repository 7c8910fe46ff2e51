package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/metrics"
)

// EventSchemaVersion is the current event envelope version.
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata interface{} `json:"metadata,omitempty"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Type-safe event constructors

// NewDailyResetCompletedEvent creates a daily reset notification.
func NewDailyResetCompletedEvent(now time.Time, date string, forced bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeDailyResetCompleted),
		Payload: domain.DailyResetCompletedPayloadV1{
			Timestamp: now.UnixMilli(),
			Date:      date,
			Forced:    forced,
		},
	}
}

// NewTicketsExpiredEvent creates a ticket pruning notification.
func NewTicketsExpiredEvent(expired, remaining int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypeTicketsExpired),
		Payload: domain.TicketsExpiredPayloadV1{
			ExpiredCount:   expired,
			RemainingCount: remaining,
		},
	}
}

// NewPlantsStatusUpdatedEvent creates a ready-sweep notification.
func NewPlantsStatusUpdatedEvent(updated int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    Type(domain.EventTypePlantsStatusUpdated),
		Payload: domain.PlantsStatusUpdatedPayloadV1{
			UpdatedCount: updated,
		},
	}
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; handler errors are collected, not fail-fast.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
