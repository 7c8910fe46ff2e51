package plant

import (
	"time"

	"github.com/edupet/engine/internal/concurrency"
	"github.com/edupet/engine/internal/domain"
)

// Config holds the plant lifecycle tuning. Zero values fall back to the
// domain defaults; Now falls back to time.Now. Locks must be the instance
// shared by every user-document writer so their save cycles serialize.
type Config struct {
	WaterRequired int
	GrowthTime    time.Duration
	HarvestReward int
	PlantCap      int
	Now           func() time.Time
	Locks         *concurrency.LockManager
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		WaterRequired: domain.DefaultWaterRequired,
		GrowthTime:    domain.DefaultGrowthTime,
		HarvestReward: domain.DefaultHarvestReward,
		PlantCap:      domain.DefaultPlantCap,
		Now:           time.Now,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.WaterRequired <= 0 {
		c.WaterRequired = d.WaterRequired
	}
	if c.GrowthTime <= 0 {
		c.GrowthTime = d.GrowthTime
	}
	if c.HarvestReward <= 0 {
		c.HarvestReward = d.HarvestReward
	}
	if c.PlantCap <= 0 {
		c.PlantCap = d.PlantCap
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Locks == nil {
		c.Locks = concurrency.NewLockManager()
	}
	return c
}

// Failure messages shown to the player. The Reason code is the contract;
// these strings are display convenience only.
const (
	MsgPlantNotFound     = "Plant not found"
	MsgAlreadyGrown      = "This plant is already fully grown"
	MsgWaterFull         = "This plant has enough water"
	MsgNotReady          = "This plant is not ready to grow yet"
	MsgWaterInsufficient = "Not enough water"
	MsgNoValidTicket     = "No valid growth ticket"
	MsgAlreadyProcessing = "Growth already in progress"
	MsgNotGrown          = "This plant cannot be harvested yet"
	MsgPlantLimit        = "All pots are in use"
)

// Notification types surfaced by Notifications.
const (
	NotifyGrowthAvailable = "GROWTH_AVAILABLE"
	NotifyTicketExpiring  = "TICKET_EXPIRING"
	NotifyWaterNeeded     = "WATER_NEEDED"
)

// ticketExpiryWarning is how close to expiry a ticket must be before the
// TICKET_EXPIRING notification fires.
const ticketExpiryWarning = 2 * time.Hour
