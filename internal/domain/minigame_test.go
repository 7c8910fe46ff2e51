package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidGameType(t *testing.T) {
	for _, g := range AllGameTypes() {
		assert.True(t, ValidGameType(g), string(g))
	}
	assert.False(t, ValidGameType("poker"))
	assert.False(t, ValidGameType(""))
}

func TestNormalize_SameDayNoChange(t *testing.T) {
	prog := NewMinigameProgress("2026-08-28")
	prog.DailyPlays[GameMemory] = 3

	changed := prog.Normalize("2026-08-28")

	assert.False(t, changed)
	assert.Equal(t, 3, prog.DailyPlays[GameMemory])
}

func TestNormalize_DayRollover(t *testing.T) {
	prog := NewMinigameProgress("2026-08-27")
	prog.DailyPlays[GameMemory] = 5
	prog.DailyPlays[GameMath] = 2
	prog.TodayRewards = RewardTotals{Coins: 120, NormalTickets: 1}
	prog.TotalRewards = RewardTotals{Coins: 900, NormalTickets: 4, GrowthTickets: 2}
	prog.WeeklyBonuses[GameMath] = "2026-08-24"
	prog.TotalStats[GameMemory].Played = 30

	changed := prog.Normalize("2026-08-28")

	require.True(t, changed)
	assert.Equal(t, "2026-08-28", prog.LastPlayDate)
	for _, g := range AllGameTypes() {
		assert.Zero(t, prog.DailyPlays[g], string(g))
	}
	assert.Zero(t, prog.TodayRewards.Coins)

	// Lifetime accounting and weekly bonus markers survive the rollover
	assert.Equal(t, 900, prog.TotalRewards.Coins)
	assert.Equal(t, "2026-08-24", prog.WeeklyBonuses[GameMath])
	assert.Equal(t, 30, prog.TotalStats[GameMemory].Played)
}

func TestNormalize_BackfillsMissingMaps(t *testing.T) {
	prog := &MinigameProgress{LastPlayDate: "2026-08-28"}

	changed := prog.Normalize("2026-08-28")

	require.True(t, changed)
	for _, g := range AllGameTypes() {
		_, ok := prog.DailyPlays[g]
		assert.True(t, ok, string(g))
		require.NotNil(t, prog.TotalStats[g], string(g))
	}
	assert.NotNil(t, prog.WeeklyBonuses)
}
