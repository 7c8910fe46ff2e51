package ledger

import (
	"time"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
)

// Config holds the progression tuning. Zero values fall back to the domain
// defaults; Now falls back to time.Now. Locks must be the instance shared
// by every user-document writer so their save cycles serialize.
type Config struct {
	Thresholds map[int]domain.RewardBundle
	TicketTTL  time.Duration
	Now        func() time.Time
	Locks      *concurrency.LockManager
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Thresholds: domain.DefaultRewardThresholds(),
		TicketTTL:  domain.DefaultTicketTTL,
		Now:        time.Now,
	}
}

func (c Config) normalized() Config {
	if len(c.Thresholds) == 0 {
		c.Thresholds = domain.DefaultRewardThresholds()
	}
	if c.TicketTTL <= 0 {
		c.TicketTTL = domain.DefaultTicketTTL
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Locks == nil {
		c.Locks = concurrency.NewLockManager()
	}
	return c
}

// Failure messages shown to the player.
const (
	MsgAlreadyCompleted  = "Subject already completed today"
	MsgInsufficientFunds = "Not enough money"
)

// weakAreaCount is how many lowest-scoring subjects are surfaced.
const weakAreaCount = 3
