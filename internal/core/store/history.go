package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riftlens/riftlens/internal/core"
)

// LookupRecord is one row of the lookup history.
type LookupRecord struct {
	ID           string        `json:"id"`
	RiotID       string        `json:"riotId"`
	Region       core.Region   `json:"region"`
	Source       string        `json:"source"`
	Tier         core.Tier     `json:"tier"`
	Rank         core.Division `json:"rank"`
	LeaguePoints int           `json:"leaguePoints"`
	Wins         int           `json:"wins"`
	Losses       int           `json:"losses"`
	LookedUpAt   time.Time     `json:"lookedUpAt"`
}

// AppendLookup records a resolved lookup in the history.
func (s *Store) AppendLookup(ctx context.Context, riotID string, region core.Region, source string, info *core.RankedInfo) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if info == nil {
		return errors.New("ranked info is required")
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO lookup_history (id, riot_id, region, source, tier, rank,
			league_points, wins, losses, looked_up_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), riotID, string(region), source,
		string(info.Tier), string(info.Rank), info.LeaguePoints,
		info.Wins, info.Losses, info.LastUpdated.UTC().Unix())
	if err != nil {
		return fmt.Errorf("append lookup: %w", err)
	}
	return nil
}

// RecentLookups returns up to limit history rows for an identity, newest
// first. A zero limit means 20.
func (s *Store) RecentLookups(ctx context.Context, riotID string, limit int) ([]*LookupRecord, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, riot_id, region, source, tier, rank, league_points,
		       wins, losses, looked_up_at
		FROM lookup_history
		WHERE riot_id = ?
		ORDER BY looked_up_at DESC
		LIMIT ?
	`, riotID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent lookups: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	records := make([]*LookupRecord, 0, limit)
	for rows.Next() {
		var (
			rec      LookupRecord
			region   string
			tier     string
			rank     string
			lookedAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.RiotID, &region, &rec.Source, &tier, &rank,
			&rec.LeaguePoints, &rec.Wins, &rec.Losses, &lookedAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		rec.Region = core.Region(region)
		rec.Tier = core.Tier(tier)
		rec.Rank = core.Division(rank)
		rec.LookedUpAt = time.Unix(lookedAt, 0).UTC()
		records = append(records, &rec)
	}
	return records, rows.Err()
}
