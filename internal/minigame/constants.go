package minigame

import (
	"time"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
)

// Config holds the minigame tuning. Zero values fall back to the domain
// defaults; Now falls back to time.Now. Locks should be the instance shared
// with the other services so document save cycles serialize.
type Config struct {
	DailyPlayLimit int
	ClawEntryFee   int
	Now            func() time.Time
	Locks          *concurrency.LockManager
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		DailyPlayLimit: domain.DefaultDailyPlayLimit,
		ClawEntryFee:   domain.DefaultClawEntryFee,
		Now:            time.Now,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.DailyPlayLimit <= 0 {
		c.DailyPlayLimit = d.DailyPlayLimit
	}
	if c.ClawEntryFee <= 0 {
		c.ClawEntryFee = d.ClawEntryFee
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Locks == nil {
		c.Locks = concurrency.NewLockManager()
	}
	return c
}

// Coin payouts and weekly bonus gates.
const (
	memoryBaseCoins    = 20
	memoryPerfectBonus = 10

	mathCoinsPerAnswer  = 2
	mathWeeklyThreshold = 10

	catchCoinsPerDrop    = 1
	catchWeeklyThreshold = 20
)

// Failure messages shown to the player.
const (
	MsgDailyLimitReached = "Daily play limit reached for this game"
	MsgInsufficientFunds = "Not enough money for the claw machine"
	MsgUnknownGame       = "Unknown game"
)

// ticketSourceMinigameMath marks normal gacha grants from the math bonus.
const ticketSourceMinigameMath = "minigame_math"
