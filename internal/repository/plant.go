package repository

import (
	"context"

	"github.com/edupet/engine/internal/domain"
)

// Plant defines the persistence contract for plant records.
type Plant interface {
	// Get returns the plant or domain.ErrPlantNotFound.
	Get(ctx context.Context, plantID string) (*domain.Plant, error)
	// Save inserts or overwrites the plant record.
	Save(ctx context.Context, plant *domain.Plant) error
	// Delete removes the plant record. Deleting a missing plant is a no-op.
	Delete(ctx context.Context, plantID string) error
	// ListByOwner returns all plants owned by ownerID in planting order.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Plant, error)
}
