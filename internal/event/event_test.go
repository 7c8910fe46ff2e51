package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupet/engine/internal/domain"
)

func TestMemoryBus_PublishAndSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(Type(domain.EventTypeDailyResetCompleted), func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	now := time.Date(2026, 8, 28, 0, 0, 5, 0, time.UTC)
	err := bus.Publish(context.Background(), NewDailyResetCompletedEvent(now, "2026-08-28", false))
	require.NoError(t, err)

	require.Len(t, received, 1)
	assert.Equal(t, EventSchemaVersion, received[0].Version)

	payload, ok := received[0].Payload.(domain.DailyResetCompletedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "2026-08-28", payload.Date)
	assert.False(t, payload.Forced)
	assert.Equal(t, now.UnixMilli(), payload.Timestamp)
}

func TestMemoryBus_NoSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewTicketsExpiredEvent(2, 1))
	assert.NoError(t, err)
}

func TestMemoryBus_HandlersRunInSubscriptionOrder(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type(domain.EventTypePlantsStatusUpdated)

	var order []string
	bus.Subscribe(eventType, func(ctx context.Context, e Event) error {
		order = append(order, "first")
		return nil
	})
	bus.Subscribe(eventType, func(ctx context.Context, e Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewPlantsStatusUpdatedEvent(1)))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestMemoryBus_CollectsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type(domain.EventTypeTicketsExpired)

	calls := 0
	bus.Subscribe(eventType, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(eventType, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})
	bus.Subscribe(eventType, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("bang")
	})

	err := bus.Publish(context.Background(), NewTicketsExpiredEvent(1, 0))

	// Every handler runs despite earlier failures
	assert.Equal(t, 3, calls)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 handler error(s)")
	assert.Contains(t, err.Error(), string(eventType))
}

func TestMemoryBus_TypeIsolation(t *testing.T) {
	bus := NewMemoryBus()

	resetCalls := 0
	bus.Subscribe(Type(domain.EventTypeDailyResetCompleted), func(ctx context.Context, e Event) error {
		resetCalls++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewTicketsExpiredEvent(1, 1)))
	assert.Zero(t, resetCalls)
}

func TestEventConstructors(t *testing.T) {
	expired := NewTicketsExpiredEvent(3, 2)
	assert.Equal(t, Type(domain.EventTypeTicketsExpired), expired.Type)
	assert.Equal(t, domain.TicketsExpiredPayloadV1{ExpiredCount: 3, RemainingCount: 2}, expired.Payload)

	updated := NewPlantsStatusUpdatedEvent(4)
	assert.Equal(t, Type(domain.EventTypePlantsStatusUpdated), updated.Type)
	assert.Equal(t, domain.PlantsStatusUpdatedPayloadV1{UpdatedCount: 4}, updated.Payload)
}
