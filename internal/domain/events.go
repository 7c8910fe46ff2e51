package domain

// Event type constants used for event bus subscriptions and metrics.
// Event types follow the pattern: <entity>.<action>.
const (
	// EventTypeDailyResetCompleted is published when the calendar-date
	// rollover reset completes (or a force reset is executed).
	EventTypeDailyResetCompleted = "daily_reset.completed"

	// EventTypeTicketsExpired is published when the maintenance sweep prunes
	// one or more expired growth tickets.
	EventTypeTicketsExpired = "tickets.expired"

	// EventTypePlantsStatusUpdated is published when the maintenance sweep
	// transitions one or more plants to READY.
	EventTypePlantsStatusUpdated = "plants.status_updated"
)
