package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/riftlens/riftlens/internal/core"
	"github.com/riftlens/riftlens/internal/core/riot"
)

// Orchestrator is the real core.Client. It composes the sequential
// identity → summoner → league lookups into one logical operation, with
// every call routed through the rate-limited scheduler. Transport
// failures propagate unchanged; no partial result is ever returned.
type Orchestrator struct {
	Scheduler *Scheduler
	Endpoints riot.Endpoints
	Clock     func() time.Time
}

var _ core.Client = (*Orchestrator)(nil)

// Source identifies the backing data source.
func (o *Orchestrator) Source() string { return "riot" }

// GetRankedInfo resolves a Riot ID to its current solo-queue standing.
func (o *Orchestrator) GetRankedInfo(ctx context.Context, riotID string, region core.Region) (*core.RankedInfo, error) {
	identity, err := core.ParseIdentity(riotID)
	if err != nil {
		return nil, err
	}

	account, err := o.resolveAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	summoner, err := o.resolveSummoner(ctx, region, account.PUUID)
	if err != nil {
		return nil, err
	}

	entry, err := o.resolveSoloEntry(ctx, region, account.PUUID, identity)
	if err != nil {
		return nil, err
	}

	name := summoner.Name
	if name == "" {
		name = identity.GameName
	}

	return &core.RankedInfo{
		SummonerID:    summoner.ID,
		PUUID:         account.PUUID,
		SummonerName:  name,
		SummonerLevel: summoner.SummonerLevel,
		Tier:          entry.Tier,
		Rank:          entry.Rank,
		LeaguePoints:  entry.LeaguePoints,
		Wins:          entry.Wins,
		Losses:        entry.Losses,
		Veteran:       entry.Veteran,
		Inactive:      entry.Inactive,
		FreshBlood:    entry.FreshBlood,
		HotStreak:     entry.HotStreak,
		LastUpdated:   o.now(),
	}, nil
}

// UpdatePlayer refreshes the player's ranked snapshot in place, caching
// the resolved summoner identifiers for later live-game checks.
func (o *Orchestrator) UpdatePlayer(ctx context.Context, player *core.Player) error {
	info, err := o.GetRankedInfo(ctx, player.RiotID, player.Region)
	if err != nil {
		return err
	}

	player.SummonerID = info.SummonerID
	player.PUUID = info.PUUID
	player.Ranked = info
	player.LastUpdated = info.LastUpdated
	return nil
}

// IsInGame reports whether the player is currently in a live game. The
// resolved PUUID is cached on the player record so repeated checks skip
// the identity step. An upstream NotFound means "not in game"; any
// other failure propagates.
func (o *Orchestrator) IsInGame(ctx context.Context, player *core.Player) (bool, error) {
	if player.PUUID == "" {
		identity, err := core.ParseIdentity(player.RiotID)
		if err != nil {
			return false, err
		}
		account, err := o.resolveAccount(ctx, identity)
		if err != nil {
			return false, err
		}
		player.PUUID = account.PUUID
	}

	body, err := o.Scheduler.Submit(ctx, RequestSpec{
		URL: o.Endpoints.ActiveGameByPUUID(player.Region, player.PUUID),
	})
	if err != nil {
		if riot.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	var game riot.CurrentGame
	if err := json.Unmarshal(body, &game); err != nil {
		return false, fmt.Errorf("decode active game: %w", err)
	}
	return true, nil
}

func (o *Orchestrator) resolveAccount(ctx context.Context, identity core.Identity) (*riot.Account, error) {
	body, err := o.Scheduler.Submit(ctx, RequestSpec{URL: o.Endpoints.AccountByRiotID(identity)})
	if err != nil {
		return nil, err
	}

	var account riot.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &account, nil
}

func (o *Orchestrator) resolveSummoner(ctx context.Context, region core.Region, puuid string) (*riot.Summoner, error) {
	body, err := o.Scheduler.Submit(ctx, RequestSpec{URL: o.Endpoints.SummonerByPUUID(region, puuid)})
	if err != nil {
		return nil, err
	}

	var summoner riot.Summoner
	if err := json.Unmarshal(body, &summoner); err != nil {
		return nil, fmt.Errorf("decode summoner: %w", err)
	}
	return &summoner, nil
}

func (o *Orchestrator) resolveSoloEntry(ctx context.Context, region core.Region, puuid string, identity core.Identity) (*riot.LeagueEntry, error) {
	body, err := o.Scheduler.Submit(ctx, RequestSpec{URL: o.Endpoints.LeagueEntriesByPUUID(region, puuid)})
	if err != nil {
		return nil, err
	}

	var entries []riot.LeagueEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode league entries: %w", err)
	}

	for i := range entries {
		if entries[i].QueueType == core.QueueSolo {
			return &entries[i], nil
		}
	}
	return nil, &core.NoRankedDataError{RiotID: identity.String()}
}

func (o *Orchestrator) now() time.Time {
	if o != nil && o.Clock != nil {
		return o.Clock()
	}
	return time.Now().UTC()
}
