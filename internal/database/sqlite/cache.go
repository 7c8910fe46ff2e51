package sqlite

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/edupet/engine/internal/domain"
)

const (
	plantCacheSize = 64
	plantCacheTTL  = 30 * time.Second
)

// plantCache is an in-memory LRU over plant lookups with time-based
// expiration. Entries are stored and returned by value copy so callers can
// mutate a fetched plant without corrupting the cache.
type plantCache struct {
	lru *expirable.LRU[string, domain.Plant]
}

func newPlantCache(size int, ttl time.Duration) *plantCache {
	return &plantCache{
		lru: expirable.NewLRU[string, domain.Plant](size, nil, ttl),
	}
}

// Get retrieves a copy of the cached plant, if present.
func (c *plantCache) Get(plantID string) (*domain.Plant, bool) {
	entry, found := c.lru.Get(plantID)
	if !found {
		return nil, false
	}
	if entry.GrownAt != nil {
		grown := *entry.GrownAt
		entry.GrownAt = &grown
	}
	return &entry, true
}

// Set stores a copy of the plant.
func (c *plantCache) Set(plant *domain.Plant) {
	entry := *plant
	if plant.GrownAt != nil {
		grown := *plant.GrownAt
		entry.GrownAt = &grown
	}
	c.lru.Add(plant.PlantID, entry)
}

// Invalidate removes a plant from the cache.
func (c *plantCache) Invalidate(plantID string) {
	c.lru.Remove(plantID)
}

// Clear removes all entries.
func (c *plantCache) Clear() {
	c.lru.Purge()
}
