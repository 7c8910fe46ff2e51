package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/repository"
	"github.com/edupet/engine/internal/utils"
)

// minigameRepo implements repository.Minigame over the store.
type minigameRepo struct {
	s *Store
}

// Minigames returns the minigame-progress repository.
func (s *Store) Minigames() repository.Minigame {
	return &minigameRepo{s: s}
}

// Load returns the minigame document, creating a fresh default on first
// access.
func (r *minigameRepo) Load(ctx context.Context) (*domain.MinigameProgress, error) {
	var doc string
	err := r.s.db.QueryRowContext(ctx, `SELECT doc FROM minigame_progress WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		progress := domain.NewMinigameProgress(utils.FormatDate(r.s.now()))
		if err := r.Save(ctx, progress); err != nil {
			return nil, fmt.Errorf("failed to create initial minigame progress: %w", err)
		}
		return progress, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load minigame progress: %w", err)
	}

	var progress domain.MinigameProgress
	if err := json.Unmarshal([]byte(doc), &progress); err != nil {
		return nil, fmt.Errorf("failed to decode minigame progress: %w", err)
	}
	return &progress, nil
}

// Save overwrites the whole minigame document.
func (r *minigameRepo) Save(ctx context.Context, progress *domain.MinigameProgress) error {
	doc, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to encode minigame progress: %w", err)
	}

	_, err = r.s.db.ExecContext(ctx, `
		INSERT INTO minigame_progress (id, doc, updated_at)
		VALUES (1, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			doc        = excluded.doc,
			updated_at = datetime('now')
	`, string(doc))
	if err != nil {
		return fmt.Errorf("failed to save minigame progress: %w", err)
	}
	return nil
}
