// Package sqlite implements the repository contracts on an embedded SQLite
// database. Documents (user state, minigame progress) are stored as single
// JSON rows and overwritten whole; plants get a real table so owner listings
// stay cheap.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the embedded database backing all repositories.
type Store struct {
	db     *sql.DB
	plants *plantCache
	now    func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// Single logical writer; a second connection would only cause lock
	// contention with modernc's file locking.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA foreign_keys = ON`,
		`PRAGMA busy_timeout = 5000`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	for _, stmt := range migrations() {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return &Store{
		db:     db,
		plants: newPlantCache(plantCacheSize, plantCacheTTL),
		now:    time.Now,
	}, nil
}

// migrations returns the schema statements. Each string is a single SQL
// statement (SQLite executes one at a time).
func migrations() []string {
	return []string{
		// Whole-document user state, singleton row
		`CREATE TABLE IF NOT EXISTS user_state (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			doc        TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,

		// Plant records
		`CREATE TABLE IF NOT EXISTS plants (
			plant_id    TEXT PRIMARY KEY,
			owner_id    TEXT NOT NULL,
			status      TEXT NOT NULL,
			water_count INTEGER NOT NULL DEFAULT 0,
			planted_at  TEXT NOT NULL,
			grown_at    TEXT,
			plant_type  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plants_owner ON plants(owner_id, planted_at)`,

		// Whole-document minigame progress, singleton row
		`CREATE TABLE IF NOT EXISTS minigame_progress (
			id         INTEGER PRIMARY KEY CHECK (id = 1),
			doc        TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.plants.Clear()
	return s.db.Close()
}
