package domain

import "time"

// Default tuning values. WaterRequired is the single authoritative watering
// constant; the growth-eligibility check enforces it.
const (
	DefaultWaterRequired  = 20
	DefaultGrowthTime     = 24 * time.Hour
	DefaultTicketTTL      = 24 * time.Hour
	DefaultHarvestReward  = 100
	DefaultPlantCap       = 2
	DefaultDailyPlayLimit = 5
	DefaultClawEntryFee   = 10
)

// RewardBundle is one entry of the threshold reward table.
type RewardBundle struct {
	GrowthTickets int `json:"growth_tickets,omitempty" toml:"growth_tickets"`
	NormalGacha   int `json:"normal_gacha,omitempty" toml:"normal_gacha"`
	PremiumGacha  int `json:"premium_gacha,omitempty" toml:"premium_gacha"`
}

// Empty reports whether the bundle grants nothing.
func (b RewardBundle) Empty() bool {
	return b.GrowthTickets == 0 && b.NormalGacha == 0 && b.PremiumGacha == 0
}

// DefaultRewardThresholds maps a cumulative completed-subject count to the
// bundle granted once when that exact count is first reached. Counts without
// an entry grant nothing.
func DefaultRewardThresholds() map[int]RewardBundle {
	return map[int]RewardBundle{
		3: {GrowthTickets: 1},
		5: {NormalGacha: 1},
		6: {GrowthTickets: 1},
		9: {PremiumGacha: 1},
	}
}

// Reward grant sources recorded on minted growth tickets.
const (
	TicketSourceThreshold     = "subject_threshold"
	TicketSourceMinigameCatch = "minigame_catch"
	TicketSourceAdmin         = "admin"
)
