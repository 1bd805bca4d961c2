package core

import (
	"context"
	"fmt"
)

// Client resolves ranked statistics for tracked players. The real
// implementation talks to the upstream API through the rate-limited
// scheduler; the synthetic implementation fabricates plausible data when
// no credential is configured. Callers never branch on which one is active.
type Client interface {
	// GetRankedInfo resolves a Riot ID to its current solo-queue standing.
	GetRankedInfo(ctx context.Context, riotID string, region Region) (*RankedInfo, error)

	// UpdatePlayer refreshes the player's ranked snapshot in place.
	UpdatePlayer(ctx context.Context, player *Player) error

	// IsInGame reports whether the player is currently in a live game.
	// An upstream "not found" means not in game, not an error.
	IsInGame(ctx context.Context, player *Player) (bool, error)

	// Source identifies the backing data source ("riot" or "synthetic").
	Source() string
}

// NoRankedDataError reports that a summoner has no entry for the solo
// ranked queue.
type NoRankedDataError struct {
	RiotID string
}

func (e *NoRankedDataError) Error() string {
	return fmt.Sprintf("no solo queue ranked data for %s", e.RiotID)
}
