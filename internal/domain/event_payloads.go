package domain

// Typed event payloads. The V1 suffix tracks the payload schema so future
// shape changes can coexist with old subscribers.

// DailyResetCompletedPayloadV1 is the payload for daily reset events.
type DailyResetCompletedPayloadV1 struct {
	Timestamp int64  `json:"timestamp"`
	Date      string `json:"date"` // YYYY-MM-DD
	Forced    bool   `json:"forced,omitempty"`
}

// TicketsExpiredPayloadV1 is the payload for ticket pruning events.
type TicketsExpiredPayloadV1 struct {
	ExpiredCount   int `json:"expired_count"`
	RemainingCount int `json:"remaining_count"`
}

// PlantsStatusUpdatedPayloadV1 is the payload for ready-sweep events.
type PlantsStatusUpdatedPayloadV1 struct {
	UpdatedCount int `json:"updated_count"`
}
