package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riftlens/riftlens/internal/core"
)

// ErrPlayerNotFound reports a roster entry that does not exist.
var ErrPlayerNotFound = errors.New("player not found in roster")

// AddPlayer inserts a roster entry; adding the same identity and region
// twice is a no-op update of the region casing only.
func (s *Store) AddPlayer(ctx context.Context, player *core.Player) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	riotID := strings.TrimSpace(player.RiotID)
	if riotID == "" {
		return errors.New("riot id is required")
	}

	result, err := s.DB.ExecContext(ctx, `
		INSERT INTO players (riot_id, region)
		VALUES (?, ?)
		ON CONFLICT(riot_id, region) DO NOTHING
	`, riotID, string(player.Region))
	if err != nil {
		return fmt.Errorf("add player: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		player.ID = id
	}
	return nil
}

// RemovePlayer deletes a roster entry by Riot ID.
func (s *Store) RemovePlayer(ctx context.Context, riotID string) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM players WHERE riot_id = ?`, strings.TrimSpace(riotID))
	if err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// GetPlayer fetches one roster entry by Riot ID.
func (s *Store) GetPlayer(ctx context.Context, riotID string) (*core.Player, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	row := s.DB.QueryRowContext(ctx, `
		SELECT id, riot_id, region, summoner_id, puuid, tier, rank,
		       league_points, wins, losses, summoner_level, hot_streak, updated_at
		FROM players
		WHERE riot_id = ?
	`, strings.TrimSpace(riotID))

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("fetch player: %w", err)
	}
	return player, nil
}

// ListPlayers returns the roster ordered by Riot ID.
func (s *Store) ListPlayers(ctx context.Context) ([]*core.Player, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, riot_id, region, summoner_id, puuid, tier, rank,
		       league_points, wins, losses, summoner_level, hot_streak, updated_at
		FROM players
		ORDER BY riot_id
	`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	players := make([]*core.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

// SavePlayerRanked persists a refreshed ranked snapshot onto the roster row.
func (s *Store) SavePlayerRanked(ctx context.Context, player *core.Player) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if player.Ranked == nil {
		return errors.New("player has no ranked snapshot to save")
	}

	info := player.Ranked
	hotStreak := 0
	if info.HotStreak {
		hotStreak = 1
	}

	_, err := s.DB.ExecContext(ctx, `
		UPDATE players
		SET summoner_id = ?, puuid = ?, tier = ?, rank = ?,
		    league_points = ?, wins = ?, losses = ?, summoner_level = ?,
		    hot_streak = ?, updated_at = ?
		WHERE riot_id = ?
	`, info.SummonerID, info.PUUID, string(info.Tier), string(info.Rank),
		info.LeaguePoints, info.Wins, info.Losses, info.SummonerLevel,
		hotStreak, info.LastUpdated.UTC().Unix(), player.RiotID)
	if err != nil {
		return fmt.Errorf("save player ranked: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*core.Player, error) {
	var (
		player       core.Player
		region       string
		summonerID   sql.NullString
		puuid        sql.NullString
		tier         sql.NullString
		rank         sql.NullString
		leaguePoints sql.NullInt64
		wins         sql.NullInt64
		losses       sql.NullInt64
		level        sql.NullInt64
		hotStreak    sql.NullInt64
		updatedAt    sql.NullInt64
	)

	if err := row.Scan(&player.ID, &player.RiotID, &region, &summonerID, &puuid,
		&tier, &rank, &leaguePoints, &wins, &losses, &level, &hotStreak, &updatedAt); err != nil {
		return nil, err
	}

	player.Region = core.Region(region)
	player.SummonerID = summonerID.String
	player.PUUID = puuid.String

	if tier.Valid && tier.String != "" {
		player.Ranked = &core.RankedInfo{
			SummonerID:    summonerID.String,
			PUUID:         puuid.String,
			SummonerName:  player.RiotID,
			SummonerLevel: level.Int64,
			Tier:          core.Tier(tier.String),
			Rank:          core.Division(rank.String),
			LeaguePoints:  int(leaguePoints.Int64),
			Wins:          int(wins.Int64),
			Losses:        int(losses.Int64),
			HotStreak:     hotStreak.Int64 == 1,
		}
		if updatedAt.Valid {
			player.Ranked.LastUpdated = time.Unix(updatedAt.Int64, 0).UTC()
		}
	}
	if updatedAt.Valid {
		player.LastUpdated = time.Unix(updatedAt.Int64, 0).UTC()
	}

	return &player, nil
}
