package synthetic

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlens/riftlens/internal/core"
)

func newFastProvider() *Provider {
	p := NewProvider()
	p.Sleep = func(ctx context.Context, d time.Duration) {}
	return p
}

func TestProviderSeedsDeterministically(t *testing.T) {
	// Two independent providers must agree on the initial standing for
	// the same name.
	a, err := newFastProvider().GetRankedInfo(context.Background(), "Faker#KR1", core.RegionKR)
	require.NoError(t, err)
	b, err := newFastProvider().GetRankedInfo(context.Background(), "Faker#KR1", core.RegionKR)
	require.NoError(t, err)

	assert.Equal(t, a.Tier, b.Tier)
	assert.Equal(t, a.Rank, b.Rank)
	assert.Equal(t, a.LeaguePoints, b.LeaguePoints)
	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Losses, b.Losses)
	assert.Equal(t, a.SummonerLevel, b.SummonerLevel)
}

func TestProviderKeyIsCaseInsensitive(t *testing.T) {
	p := newFastProvider()

	a, err := p.GetRankedInfo(context.Background(), "Faker#KR1", core.RegionKR)
	require.NoError(t, err)
	b, err := p.GetRankedInfo(context.Background(), "FAKER#KR1", core.RegionKR)
	require.NoError(t, err)

	assert.Equal(t, a.SummonerID, b.SummonerID)
	assert.Equal(t, a.Tier, b.Tier)
}

func TestProviderStatsStayInRange(t *testing.T) {
	p := newFastProvider()

	names := []string{"Alpha#NA1", "Bravo#NA1", "Charlie#NA1", "Delta#NA1", "Echo#NA1"}
	for i := 0; i < 40; i++ {
		for _, name := range names {
			info, err := p.GetRankedInfo(context.Background(), name, core.RegionNA1)
			require.NoError(t, err)

			assert.Contains(t, core.Tiers, info.Tier)
			assert.GreaterOrEqual(t, info.LeaguePoints, 0)
			assert.LessOrEqual(t, info.LeaguePoints, 100)
			assert.GreaterOrEqual(t, info.Wins, 20)
			assert.GreaterOrEqual(t, info.Losses, 20)
			assert.GreaterOrEqual(t, info.SummonerLevel, int64(30))

			if !info.Tier.HasDivisions() {
				assert.Equal(t, core.DivisionI, info.Rank, "apex tiers carry the fixed I division")
			} else {
				assert.Contains(t, core.Divisions, info.Rank)
			}
		}
	}
}

func TestProviderCountersNeverDecrease(t *testing.T) {
	p := newFastProvider()

	prev, err := p.GetRankedInfo(context.Background(), "Grind#NA1", core.RegionNA1)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		info, err := p.GetRankedInfo(context.Background(), "Grind#NA1", core.RegionNA1)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, info.Wins, prev.Wins)
		assert.GreaterOrEqual(t, info.Losses, prev.Losses)
		prev = info
	}
}

func TestProviderRejectsInvalidIdentity(t *testing.T) {
	p := newFastProvider()

	_, err := p.GetRankedInfo(context.Background(), "noseparator", core.RegionNA1)
	require.Error(t, err)

	var invalid *core.InvalidIdentityError
	assert.ErrorAs(t, err, &invalid)
}

func TestProviderUpdatePlayer(t *testing.T) {
	p := newFastProvider()

	player := &core.Player{RiotID: "Faker#KR1", Region: core.RegionKR}
	require.NoError(t, p.UpdatePlayer(context.Background(), player))

	assert.NotEmpty(t, player.SummonerID)
	assert.NotEmpty(t, player.PUUID)
	require.NotNil(t, player.Ranked)
	assert.Equal(t, "Faker", player.Ranked.SummonerName)
	assert.False(t, player.LastUpdated.IsZero())
}

func TestProviderObservesLatency(t *testing.T) {
	p := NewProvider()

	var slept []time.Duration
	p.Sleep = func(ctx context.Context, d time.Duration) {
		slept = append(slept, d)
	}

	_, err := p.GetRankedInfo(context.Background(), "Faker#KR1", core.RegionKR)
	require.NoError(t, err)

	_, err = p.IsInGame(context.Background(), &core.Player{RiotID: "Faker#KR1", Region: core.RegionKR})
	require.NoError(t, err)

	require.Len(t, slept, 2)
	assert.Equal(t, DefaultLookupLatency, slept[0])
	assert.Equal(t, DefaultInGameLatency, slept[1])
}

func TestProviderIsInGameBool(t *testing.T) {
	p := newFastProvider()

	// The answer is random but must never error for a valid identity.
	for i := 0; i < 10; i++ {
		_, err := p.IsInGame(context.Background(), &core.Player{RiotID: "Faker#KR1", Region: core.RegionKR})
		require.NoError(t, err)
	}
}
