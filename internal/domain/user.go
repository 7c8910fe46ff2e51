package domain

import "time"

// UserState is the canonical persisted document for a player. It is stored
// and rewritten as a whole; there is exactly one writer (the local session).
type UserState struct {
	UserID   string        `json:"user_id"`
	Daily    DailyProgress `json:"daily"`
	Rewards  Rewards       `json:"rewards"`
	Learning Learning      `json:"learning"`
	Wallet   Wallet        `json:"wallet"`
}

// DailyProgress tracks subject completions for the current calendar date.
// CompletedSubjectsCount always equals len(CompletedSubjectIDs).
type DailyProgress struct {
	CompletedSubjectsCount int      `json:"completed_subjects_count"`
	CompletedSubjectIDs    []string `json:"completed_subject_ids"`
	LastResetDate          string   `json:"last_reset_date"` // YYYY-MM-DD
}

// Rewards holds the user's ticket inventory.
type Rewards struct {
	GrowthTickets       []GrowthTicket `json:"growth_tickets"`
	NormalGachaTickets  int            `json:"normal_gacha_tickets"`
	PremiumGachaTickets int            `json:"premium_gacha_tickets"`
}

// Learning holds per-subject cumulative scores and the derived weak areas.
type Learning struct {
	SubjectScores map[string]int `json:"subject_scores"`
	WeakAreas     []string       `json:"weak_areas"`
}

// Wallet holds virtual currency. Water is persisted but currently unused.
type Wallet struct {
	Money int `json:"money"`
	Water int `json:"water"`
}

// NewUserState builds a zeroed state for a fresh user.
func NewUserState(userID, today string) *UserState {
	return &UserState{
		UserID: userID,
		Daily: DailyProgress{
			CompletedSubjectIDs: []string{},
			LastResetDate:       today,
		},
		Rewards: Rewards{
			GrowthTickets: []GrowthTicket{},
		},
		Learning: Learning{
			SubjectScores: map[string]int{},
			WeakAreas:     []string{},
		},
	}
}

// HasCompletedSubject reports whether the subject was already completed today.
func (u *UserState) HasCompletedSubject(subjectID string) bool {
	for _, id := range u.Daily.CompletedSubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}

// ValidGrowthTickets returns the tickets that have not expired at now.
func (u *UserState) ValidGrowthTickets(now time.Time) []GrowthTicket {
	valid := make([]GrowthTicket, 0, len(u.Rewards.GrowthTickets))
	for _, t := range u.Rewards.GrowthTickets {
		if t.Valid(now) {
			valid = append(valid, t)
		}
	}
	return valid
}

// PruneExpiredTickets removes expired tickets in place and returns how many
// were dropped. Valid tickets keep their relative order.
func (u *UserState) PruneExpiredTickets(now time.Time) int {
	before := len(u.Rewards.GrowthTickets)
	u.Rewards.GrowthTickets = u.ValidGrowthTickets(now)
	return before - len(u.Rewards.GrowthTickets)
}

// ConsumeGrowthTicket removes the first still-valid ticket in issue order.
// Returns false when no valid ticket exists.
func (u *UserState) ConsumeGrowthTicket(now time.Time) (GrowthTicket, bool) {
	for i, t := range u.Rewards.GrowthTickets {
		if t.Valid(now) {
			u.Rewards.GrowthTickets = append(
				u.Rewards.GrowthTickets[:i],
				u.Rewards.GrowthTickets[i+1:]...,
			)
			return t, true
		}
	}
	return GrowthTicket{}, false
}

// ResetDaily zeroes the daily block for the given date and prunes expired
// tickets. Idempotent: calling it again for the same date changes nothing
// beyond what an unconditional prune would.
func (u *UserState) ResetDaily(today string, now time.Time) {
	u.Daily.CompletedSubjectsCount = 0
	u.Daily.CompletedSubjectIDs = []string{}
	u.Daily.LastResetDate = today
	u.PruneExpiredTickets(now)
}
