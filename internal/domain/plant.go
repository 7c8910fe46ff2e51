package domain

import "time"

// PlantStatus is the lifecycle state of a plant. It only ever advances
// PLANTED -> READY -> GROWN; harvest deletes the record.
type PlantStatus string

const (
	PlantStatusPlanted PlantStatus = "PLANTED"
	PlantStatusReady   PlantStatus = "READY"
	PlantStatusGrown   PlantStatus = "GROWN"
)

// Plant is a single pot owned by one user.
type Plant struct {
	PlantID    string      `json:"plant_id"`
	OwnerID    string      `json:"owner_id"`
	Status     PlantStatus `json:"status"`
	WaterCount int         `json:"water_count"`
	PlantedAt  time.Time   `json:"planted_at"`
	GrownAt    *time.Time  `json:"grown_at,omitempty"`
	PlantType  string      `json:"plant_type"`
}

// PlantTypes are the cosmetic tags assigned at planting time.
var PlantTypes = []string{
	"sprout", "herb", "tulip", "blossom", "rose", "hibiscus", "sunflower", "daisy",
}
