package minigame

import "github.com/edupet/engine/internal/domain"

// PlayResult is the outcome of one rewarded play.
type PlayResult struct {
	domain.Result
	Coins          int    `json:"coins"`
	WeeklyBonus    bool   `json:"weekly_bonus"`
	BonusTicket    string `json:"bonus_ticket,omitempty"` // "normal_gacha" or "growth"
	RemainingPlays int    `json:"remaining_plays"`
}

// ClawResult is the outcome of a claw machine entry or settlement.
type ClawResult struct {
	domain.Result
	Balance        int               `json:"balance,omitempty"`
	Prize          *domain.ClawPrize `json:"prize,omitempty"`
	RemainingPlays int               `json:"remaining_plays"`
}

// GameStatsView is the per-game slice of the stats projection.
type GameStatsView struct {
	Played         int `json:"played"`
	Won            int `json:"won,omitempty"`
	BestScore      int `json:"best_score,omitempty"`
	PlaysToday     int `json:"plays_today"`
	RemainingPlays int `json:"remaining_plays"`
}

// StatsView is the full minigame accounting projection.
type StatsView struct {
	Games        map[domain.GameType]GameStatsView `json:"games"`
	Prizes       []domain.ClawPrize                `json:"prizes"`
	TotalRewards domain.RewardTotals               `json:"total_rewards"`
	TodayRewards domain.RewardTotals               `json:"today_rewards"`
}
