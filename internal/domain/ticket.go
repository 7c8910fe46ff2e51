package domain

import (
	"time"

	"github.com/google/uuid"
)

// GrowthTicket is a time-boxed consumable required to advance a READY plant
// to GROWN. Tickets are immutable once issued; they are only ever removed.
type GrowthTicket struct {
	TicketID  string    `json:"ticket_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Source    string    `json:"source,omitempty"`
}

// NewGrowthTicket issues a ticket at now with the configured TTL.
func NewGrowthTicket(now time.Time, ttl time.Duration, source string) GrowthTicket {
	return GrowthTicket{
		TicketID:  uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		Source:    source,
	}
}

// Valid reports whether the ticket has not expired at now.
func (t GrowthTicket) Valid(now time.Time) bool {
	return t.ExpiresAt.After(now)
}
