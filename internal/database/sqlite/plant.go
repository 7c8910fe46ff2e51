package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/edupet/engine/internal/domain"
	"github.com/edupet/engine/internal/repository"
)

const timeLayout = time.RFC3339Nano

// plantRepo implements repository.Plant over the store.
type plantRepo struct {
	s *Store
}

// Plants returns the plant repository.
func (s *Store) Plants() repository.Plant {
	return &plantRepo{s: s}
}

// Get returns the plant or domain.ErrPlantNotFound.
func (r *plantRepo) Get(ctx context.Context, plantID string) (*domain.Plant, error) {
	if plant, ok := r.s.plants.Get(plantID); ok {
		return plant, nil
	}

	row := r.s.db.QueryRowContext(ctx, `
		SELECT plant_id, owner_id, status, water_count, planted_at, grown_at, plant_type
		FROM plants WHERE plant_id = ?
	`, plantID)

	plant, err := scanPlant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plant %s: %w", plantID, err)
	}

	r.s.plants.Set(plant)
	return plant, nil
}

// Save inserts or overwrites the plant record.
func (r *plantRepo) Save(ctx context.Context, plant *domain.Plant) error {
	var grownAt sql.NullString
	if plant.GrownAt != nil {
		grownAt = sql.NullString{String: plant.GrownAt.Format(timeLayout), Valid: true}
	}

	_, err := r.s.db.ExecContext(ctx, `
		INSERT INTO plants (plant_id, owner_id, status, water_count, planted_at, grown_at, plant_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(plant_id) DO UPDATE SET
			owner_id    = excluded.owner_id,
			status      = excluded.status,
			water_count = excluded.water_count,
			planted_at  = excluded.planted_at,
			grown_at    = excluded.grown_at,
			plant_type  = excluded.plant_type
	`, plant.PlantID, plant.OwnerID, string(plant.Status), plant.WaterCount,
		plant.PlantedAt.Format(timeLayout), grownAt, plant.PlantType)
	if err != nil {
		return fmt.Errorf("failed to save plant %s: %w", plant.PlantID, err)
	}

	r.s.plants.Set(plant)
	return nil
}

// Delete removes the plant record. Deleting a missing plant is a no-op.
func (r *plantRepo) Delete(ctx context.Context, plantID string) error {
	if _, err := r.s.db.ExecContext(ctx, `DELETE FROM plants WHERE plant_id = ?`, plantID); err != nil {
		return fmt.Errorf("failed to delete plant %s: %w", plantID, err)
	}
	r.s.plants.Invalidate(plantID)
	return nil
}

// ListByOwner returns all plants owned by ownerID in planting order.
func (r *plantRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Plant, error) {
	rows, err := r.s.db.QueryContext(ctx, `
		SELECT plant_id, owner_id, status, water_count, planted_at, grown_at, plant_type
		FROM plants WHERE owner_id = ? ORDER BY planted_at
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants for %s: %w", ownerID, err)
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant row: %w", err)
		}
		plants = append(plants, *plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plant rows: %w", err)
	}
	return plants, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPlant(row scanner) (*domain.Plant, error) {
	var (
		plant     domain.Plant
		status    string
		plantedAt string
		grownAt   sql.NullString
	)
	if err := row.Scan(&plant.PlantID, &plant.OwnerID, &status, &plant.WaterCount,
		&plantedAt, &grownAt, &plant.PlantType); err != nil {
		return nil, err
	}

	plant.Status = domain.PlantStatus(status)

	planted, err := time.Parse(timeLayout, plantedAt)
	if err != nil {
		return nil, fmt.Errorf("bad planted_at %q: %w", plantedAt, err)
	}
	plant.PlantedAt = planted

	if grownAt.Valid {
		grown, err := time.Parse(timeLayout, grownAt.String)
		if err != nil {
			return nil, fmt.Errorf("bad grown_at %q: %w", grownAt.String, err)
		}
		plant.GrownAt = &grown
	}

	return &plant, nil
}
