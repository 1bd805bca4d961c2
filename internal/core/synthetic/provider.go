// Package synthetic fabricates plausible ranked data when no API key is
// configured, so the rest of the system and its consumers behave exactly
// as they would against the real upstream.
package synthetic

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/riftlens/riftlens/internal/core"
)

// Artificial latencies emulating network delay for UI testing.
const (
	DefaultLookupLatency = 500 * time.Millisecond
	DefaultInGameLatency = 200 * time.Millisecond
)

// perturbChance is the probability a lookup applies a small progression
// step to the stored record.
const perturbChance = 0.30

// record is the mutable synthetic standing for one identity.
type record struct {
	tier         core.Tier
	rank         core.Division
	leaguePoints int
	wins         int
	losses       int
	level        int64
	veteran      bool
	freshBlood   bool
	hotStreak    bool
}

// Provider is a stateful drop-in for the real client. First sight of a
// name seeds its stats deterministically from the name itself; later
// lookups may apply a bounded random perturbation to simulate
// progression. Wins and losses never decrease.
type Provider struct {
	mu      sync.Mutex
	records map[string]*record
	rng     *rand.Rand

	LookupLatency time.Duration
	InGameLatency time.Duration
	Sleep         func(context.Context, time.Duration)
	Clock         func() time.Time
}

var _ core.Client = (*Provider)(nil)

// NewProvider constructs a synthetic provider with default latencies.
func NewProvider() *Provider {
	return &Provider{
		records:       make(map[string]*record),
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		LookupLatency: DefaultLookupLatency,
		InGameLatency: DefaultInGameLatency,
	}
}

// Source identifies the backing data source.
func (p *Provider) Source() string { return "synthetic" }

// GetRankedInfo returns the synthetic standing for the identity,
// creating and seeding it on first sight.
func (p *Provider) GetRankedInfo(ctx context.Context, riotID string, region core.Region) (*core.RankedInfo, error) {
	identity, err := core.ParseIdentity(riotID)
	if err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	p.sleep(ctx, p.LookupLatency)

	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(identity.GameName)
	rec, ok := p.records[key]
	if !ok {
		rec = seedRecord(key)
		p.records[key] = rec
	} else if p.rng.Float64() < perturbChance {
		p.perturb(rec)
	}

	return &core.RankedInfo{
		SummonerID:    "synthetic-" + key,
		PUUID:         "synthetic-puuid-" + key,
		SummonerName:  identity.GameName,
		SummonerLevel: rec.level,
		Tier:          rec.tier,
		Rank:          rec.rank,
		LeaguePoints:  rec.leaguePoints,
		Wins:          rec.wins,
		Losses:        rec.losses,
		Veteran:       rec.veteran,
		Inactive:      false,
		FreshBlood:    rec.freshBlood,
		HotStreak:     rec.hotStreak,
		LastUpdated:   p.now(),
	}, nil
}

// UpdatePlayer refreshes the player record from the synthetic standing.
func (p *Provider) UpdatePlayer(ctx context.Context, player *core.Player) error {
	info, err := p.GetRankedInfo(ctx, player.RiotID, player.Region)
	if err != nil {
		return err
	}

	player.SummonerID = info.SummonerID
	player.PUUID = info.PUUID
	player.Ranked = info
	player.LastUpdated = info.LastUpdated
	return nil
}

// IsInGame fabricates a live-game answer with a shorter latency.
func (p *Provider) IsInGame(ctx context.Context, player *core.Player) (bool, error) {
	if _, err := core.ParseIdentity(player.RiotID); err != nil {
		return false, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	p.sleep(ctx, p.InGameLatency)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < 0.25, nil
}

// seedRecord draws initial stats from fixed uniform ranges, seeded by
// the lowercased name so repeated runs agree on the starting point.
func seedRecord(key string) *record {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	tier := core.Tiers[rng.Intn(len(core.Tiers))]
	rank := core.DivisionI
	if tier.HasDivisions() {
		rank = core.Divisions[rng.Intn(len(core.Divisions))]
	}

	return &record{
		tier:         tier,
		rank:         rank,
		leaguePoints: rng.Intn(101),
		wins:         20 + rng.Intn(300),
		losses:       20 + rng.Intn(300),
		level:        int64(30 + rng.Intn(470)),
		veteran:      rng.Float64() < 0.10,
		freshBlood:   rng.Float64() < 0.10,
		hotStreak:    rng.Float64() < 0.20,
	}
}

// perturb applies a bounded progression step: small win/loss increments
// and a point drift clamped to [0,100]. Counters only grow.
func (p *Provider) perturb(rec *record) {
	rec.wins += p.rng.Intn(3)
	rec.losses += p.rng.Intn(3)

	rec.leaguePoints += p.rng.Intn(31) - 15
	if rec.leaguePoints < 0 {
		rec.leaguePoints = 0
	}
	if rec.leaguePoints > 100 {
		rec.leaguePoints = 100
	}

	rec.hotStreak = p.rng.Float64() < 0.20
}

func (p *Provider) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	if p.Sleep != nil {
		p.Sleep(ctx, d)
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (p *Provider) now() time.Time {
	if p.Clock != nil {
		return p.Clock()
	}
	return time.Now().UTC()
}

// String describes the provider for logs.
func (p *Provider) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("synthetic provider (%d identities)", len(p.records))
}
