package reset

// ResetResult reports one CheckAndReset or ForceReset run.
type ResetResult struct {
	Performed bool   `json:"performed"`
	Date      string `json:"date"`
	Forced    bool   `json:"forced"`
}

// CleanupResult reports one expired-ticket sweep.
type CleanupResult struct {
	ExpiredCount   int `json:"expired_count"`
	RemainingCount int `json:"remaining_count"`
}

// SweepResult reports one plant ready sweep.
type SweepResult struct {
	UpdatedCount int `json:"updated_count"`
}

// Countdown is the time remaining until the next local midnight.
type Countdown struct {
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	TotalMs   int64  `json:"total_ms"`
	Formatted string `json:"formatted"`
}

// DailyStatistics is the end-of-day progress projection.
type DailyStatistics struct {
	Date               string    `json:"date"`
	CompletedSubjects  int       `json:"completed_subjects"`
	PlantsPlantedToday int       `json:"plants_planted_today"`
	PlantsGrownToday   int       `json:"plants_grown_today"`
	ActiveTickets      int       `json:"active_tickets"`
	UntilReset         Countdown `json:"until_reset"`
}
