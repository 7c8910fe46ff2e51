package domain

import "time"

// GameType identifies one of the fixed minigames.
type GameType string

const (
	GameMemory GameType = "memory"
	GameMath   GameType = "math"
	GameCatch  GameType = "catch"
	GameClaw   GameType = "claw"
)

// AllGameTypes lists every known game type.
func AllGameTypes() []GameType {
	return []GameType{GameMemory, GameMath, GameCatch, GameClaw}
}

// ValidGameType reports whether g names a known game.
func ValidGameType(g GameType) bool {
	switch g {
	case GameMemory, GameMath, GameCatch, GameClaw:
		return true
	}
	return false
}

// GameStats is the cumulative record for one game type. Won is meaningful
// for memory and claw; BestScore for math and catch.
type GameStats struct {
	Played    int `json:"played"`
	Won       int `json:"won,omitempty"`
	BestScore int `json:"best_score,omitempty"`
}

// ClawPrize records an animal won from the claw machine.
type ClawPrize struct {
	Name       string    `json:"name"`
	ObtainedAt time.Time `json:"obtained_at"`
	Date       string    `json:"date"` // YYYY-MM-DD
}

// RewardTotals accumulates minted rewards, either lifetime or for today.
type RewardTotals struct {
	Coins         int `json:"coins"`
	NormalTickets int `json:"normal_tickets"`
	GrowthTickets int `json:"growth_tickets"`
}

// MinigameProgress is the persisted minigame accounting document.
// WeeklyBonuses maps a game type to the YYYY-MM-DD date its bonus was last
// granted; the empty string means never.
type MinigameProgress struct {
	LastPlayDate  string               `json:"last_play_date"` // YYYY-MM-DD
	DailyPlays    map[GameType]int     `json:"daily_plays"`
	WeeklyBonuses map[GameType]string  `json:"weekly_bonuses"`
	TotalStats    map[GameType]*GameStats `json:"total_stats"`
	Prizes        []ClawPrize          `json:"prizes"`
	TotalRewards  RewardTotals         `json:"total_rewards"`
	TodayRewards  RewardTotals         `json:"today_rewards"`
}

// NewMinigameProgress builds a zeroed progress document for the given date.
func NewMinigameProgress(today string) *MinigameProgress {
	p := &MinigameProgress{
		LastPlayDate:  today,
		DailyPlays:    map[GameType]int{},
		WeeklyBonuses: map[GameType]string{},
		TotalStats:    map[GameType]*GameStats{},
		Prizes:        []ClawPrize{},
	}
	for _, g := range AllGameTypes() {
		p.DailyPlays[g] = 0
		p.TotalStats[g] = &GameStats{}
	}
	return p
}

// Normalize applies the lazy day rollover: when the stored date differs from
// today, daily play counters and today's reward totals reset to zero. It also
// backfills maps missing from older documents. Returns true when the document
// changed and should be persisted.
func (p *MinigameProgress) Normalize(today string) bool {
	changed := false

	if p.DailyPlays == nil {
		p.DailyPlays = map[GameType]int{}
		changed = true
	}
	if p.WeeklyBonuses == nil {
		p.WeeklyBonuses = map[GameType]string{}
		changed = true
	}
	if p.TotalStats == nil {
		p.TotalStats = map[GameType]*GameStats{}
		changed = true
	}
	for _, g := range AllGameTypes() {
		if _, ok := p.DailyPlays[g]; !ok {
			p.DailyPlays[g] = 0
			changed = true
		}
		if _, ok := p.TotalStats[g]; !ok {
			p.TotalStats[g] = &GameStats{}
			changed = true
		}
	}

	if p.LastPlayDate != today {
		for g := range p.DailyPlays {
			p.DailyPlays[g] = 0
		}
		p.TodayRewards = RewardTotals{}
		p.LastPlayDate = today
		changed = true
	}

	return changed
}
