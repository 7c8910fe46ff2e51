package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/repository"
	"github.com/edupet/engine/internal/utils"
)

// userStateRepo implements repository.UserState over the store.
type userStateRepo struct {
	s *Store
}

// UserStates returns the user-state repository.
func (s *Store) UserStates() repository.UserState {
	return &userStateRepo{s: s}
}

// Load returns the user document, creating and persisting a fresh default
// state (new user id, zeroed counters) on first access.
func (r *userStateRepo) Load(ctx context.Context) (*domain.UserState, error) {
	var doc string
	err := r.s.db.QueryRowContext(ctx, `SELECT doc FROM user_state WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		state := domain.NewUserState(uuid.NewString(), utils.FormatDate(r.s.now()))
		if err := r.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to create initial user state: %w", err)
		}
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	var state domain.UserState
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return nil, fmt.Errorf("failed to decode user state: %w", err)
	}
	return &state, nil
}

// Save overwrites the whole user document.
func (r *userStateRepo) Save(ctx context.Context, state *domain.UserState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode user state: %w", err)
	}

	_, err = r.s.db.ExecContext(ctx, `
		INSERT INTO user_state (id, doc, updated_at)
		VALUES (1, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			doc        = excluded.doc,
			updated_at = datetime('now')
	`, string(doc))
	if err != nil {
		return fmt.Errorf("failed to save user state: %w", err)
	}
	return nil
}
