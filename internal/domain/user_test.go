package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserState(t *testing.T) {
	state := NewUserState("user-1", "2026-08-28")

	assert.Equal(t, "user-1", state.UserID)
	assert.Equal(t, "2026-08-28", state.Daily.LastResetDate)
	assert.Empty(t, state.Daily.CompletedSubjectIDs)
	assert.Zero(t, state.Daily.CompletedSubjectsCount)
	assert.NotNil(t, state.Learning.SubjectScores)
	assert.NotNil(t, state.Rewards.GrowthTickets)
}

func TestHasCompletedSubject(t *testing.T) {
	state := NewUserState("u", "2026-08-28")
	state.Daily.CompletedSubjectIDs = []string{"math", "reading"}

	assert.True(t, state.HasCompletedSubject("math"))
	assert.False(t, state.HasCompletedSubject("science"))
}

func TestConsumeGrowthTicket_FirstValidInIssueOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	expired := GrowthTicket{TicketID: "expired", IssuedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)}
	first := GrowthTicket{TicketID: "first", IssuedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(22 * time.Hour)}
	second := GrowthTicket{TicketID: "second", IssuedAt: now.Add(-1 * time.Hour), ExpiresAt: now.Add(23 * time.Hour)}

	state := NewUserState("u", "2026-08-28")
	state.Rewards.GrowthTickets = []GrowthTicket{expired, first, second}

	ticket, ok := state.ConsumeGrowthTicket(now)
	require.True(t, ok)
	assert.Equal(t, "first", ticket.TicketID)

	// The expired ticket is skipped, not removed
	require.Len(t, state.Rewards.GrowthTickets, 2)
	assert.Equal(t, "expired", state.Rewards.GrowthTickets[0].TicketID)
	assert.Equal(t, "second", state.Rewards.GrowthTickets[1].TicketID)
}

func TestConsumeGrowthTicket_NoneValid(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	state := NewUserState("u", "2026-08-28")
	state.Rewards.GrowthTickets = []GrowthTicket{
		{TicketID: "old", ExpiresAt: now.Add(-time.Minute)},
	}

	_, ok := state.ConsumeGrowthTicket(now)
	assert.False(t, ok)
	assert.Len(t, state.Rewards.GrowthTickets, 1)
}

func TestTicketExpiryBoundary(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Valid iff ExpiresAt is strictly after now
	exact := GrowthTicket{ExpiresAt: now}
	assert.False(t, exact.Valid(now))

	later := GrowthTicket{ExpiresAt: now.Add(time.Nanosecond)}
	assert.True(t, later.Valid(now))
}

func TestPruneExpiredTickets(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	state := NewUserState("u", "2026-08-28")
	state.Rewards.GrowthTickets = []GrowthTicket{
		{TicketID: "a", ExpiresAt: now.Add(-time.Hour)},
		{TicketID: "b", ExpiresAt: now.Add(time.Hour)},
		{TicketID: "c", ExpiresAt: now.Add(-time.Minute)},
		{TicketID: "d", ExpiresAt: now.Add(2 * time.Hour)},
	}

	dropped := state.PruneExpiredTickets(now)

	assert.Equal(t, 2, dropped)
	require.Len(t, state.Rewards.GrowthTickets, 2)
	assert.Equal(t, "b", state.Rewards.GrowthTickets[0].TicketID)
	assert.Equal(t, "d", state.Rewards.GrowthTickets[1].TicketID)
}

func TestResetDaily(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)
	state := NewUserState("u", "2026-08-28")
	state.Daily.CompletedSubjectIDs = []string{"math", "reading"}
	state.Daily.CompletedSubjectsCount = 2
	state.Learning.SubjectScores["math"] = 5
	state.Wallet.Money = 300
	state.Rewards.GrowthTickets = []GrowthTicket{
		{TicketID: "stale", ExpiresAt: now.Add(-time.Hour)},
		{TicketID: "fresh", ExpiresAt: now.Add(time.Hour)},
	}
	state.Rewards.NormalGachaTickets = 2

	state.ResetDaily("2026-08-29", now)

	assert.Equal(t, "2026-08-29", state.Daily.LastResetDate)
	assert.Zero(t, state.Daily.CompletedSubjectsCount)
	assert.Empty(t, state.Daily.CompletedSubjectIDs)

	// Everything non-daily survives
	assert.Equal(t, 300, state.Wallet.Money)
	assert.Equal(t, 5, state.Learning.SubjectScores["math"])
	assert.Equal(t, 2, state.Rewards.NormalGachaTickets)
	require.Len(t, state.Rewards.GrowthTickets, 1)
	assert.Equal(t, "fresh", state.Rewards.GrowthTickets[0].TicketID)
}
