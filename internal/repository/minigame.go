package repository

import (
	"context"

	"github.com/edupet/engine/internal/domain"
)

// Minigame defines the persistence contract for the minigame accounting
// document. Load returns a fresh default document on first access; the lazy
// day-rollover normalization is the service's job, not the store's.
type Minigame interface {
	Load(ctx context.Context) (*domain.MinigameProgress, error)
	// Save overwrites the whole document.
	Save(ctx context.Context, progress *domain.MinigameProgress) error
}
