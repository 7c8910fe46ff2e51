package repository

import (
	"context"

	"github.com/edupet/engine/internal/domain"
)

// UserState defines the persistence contract for the user document.
// The document is a session singleton: Load creates and persists a fresh
// default state (new user id, zeroed counters) on first access, so it never
// returns domain.ErrUserStateNotFound to callers.
type UserState interface {
	Load(ctx context.Context) (*domain.UserState, error)
	// Save overwrites the whole document.
	Save(ctx context.Context, state *domain.UserState) error
}
