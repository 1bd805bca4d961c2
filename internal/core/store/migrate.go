package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS credentials (
		name TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		riot_id TEXT NOT NULL,
		region TEXT NOT NULL,
		summoner_id TEXT,
		puuid TEXT,
		tier TEXT,
		rank TEXT,
		league_points INTEGER,
		wins INTEGER,
		losses INTEGER,
		summoner_level INTEGER,
		hot_streak INTEGER DEFAULT 0,
		updated_at INTEGER,
		UNIQUE(riot_id, region)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_players_riot_id ON players(riot_id);`,
	`CREATE TABLE IF NOT EXISTS lookup_history (
		id TEXT PRIMARY KEY,
		riot_id TEXT NOT NULL,
		region TEXT NOT NULL,
		source TEXT NOT NULL,
		tier TEXT,
		rank TEXT,
		league_points INTEGER,
		wins INTEGER,
		losses INTEGER,
		looked_up_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_lookup_history_riot_id ON lookup_history(riot_id, looked_up_at);`,
}

// Migrate ensures the required database tables exist.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store migration failed: %w", err)
		}
	}

	return nil
}
