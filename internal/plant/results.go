package plant

import (
	"time"

	"github.com/edupet/engine/internal/domain"
)

// PlantSeedResult is the outcome of PlantSeed.
type PlantSeedResult struct {
	domain.Result
	Plant *domain.Plant `json:"plant,omitempty"`
}

// WaterResult is the outcome of WaterPlant.
type WaterResult struct {
	domain.Result
	WaterCount int                `json:"water_count,omitempty"`
	Status     domain.PlantStatus `json:"status,omitempty"`
}

// GrowResult is the outcome of GrowPlant.
type GrowResult struct {
	domain.Result
	Plant *domain.Plant `json:"plant,omitempty"`
}

// HarvestResult is the outcome of HarvestPlant.
type HarvestResult struct {
	domain.Result
	MoneyEarned int           `json:"money_earned,omitempty"`
	Plant       *domain.Plant `json:"plant,omitempty"`
}

// PlantView is the per-plant dashboard projection.
type PlantView struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Status        domain.PlantStatus `json:"status"`
	WaterCount    int                `json:"water_count"`
	WaterProgress string             `json:"water_progress"`
	TimeRemaining string             `json:"time_remaining"`
	CanGrow       bool               `json:"can_grow"`
	PlantedAt     time.Time          `json:"planted_at"`
	GrownAt       *time.Time         `json:"grown_at,omitempty"`
}

// TicketView is the per-ticket dashboard projection.
type TicketView struct {
	ID        string `json:"id"`
	ExpiresIn string `json:"expires_in"`
}

// TicketSummary summarizes the user's ticket inventory.
type TicketSummary struct {
	GrowthTickets int          `json:"growth_tickets"`
	Details       []TicketView `json:"details"`
	NormalGacha   int          `json:"normal_gacha"`
	PremiumGacha  int          `json:"premium_gacha"`
}

// Dashboard is the combined farm view.
type Dashboard struct {
	CompletedSubjects int           `json:"completed_subjects"`
	Plants            []PlantView   `json:"plants"`
	Tickets           TicketSummary `json:"tickets"`
}

// Notification is a pending farm alert.
type Notification struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// Statistics summarizes lifetime farm activity.
type Statistics struct {
	TotalPlants       int            `json:"total_plants"`
	GrownPlants       int            `json:"grown_plants"`
	GrowingPlants     int            `json:"growing_plants"`
	ReadyPlants       int            `json:"ready_plants"`
	TotalWaterGiven   int            `json:"total_water_given"`
	SubjectsCompleted int            `json:"subjects_completed"`
	SubjectScores     map[string]int `json:"subject_scores"`
}
