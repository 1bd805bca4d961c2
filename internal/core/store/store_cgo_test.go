//go:build cgo

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlens/riftlens/internal/config"
	"github.com/riftlens/riftlens/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	db, err := Open(ctx, config.StoreConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestCredentialRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	// Empty before anything is stored.
	token, err := db.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	require.NoError(t, db.SetCredential(ctx, "RGAPI-abc"))
	token, err = db.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RGAPI-abc", token)

	// Setting again overwrites.
	require.NoError(t, db.SetCredential(ctx, "RGAPI-def"))
	token, err = db.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RGAPI-def", token)

	// Empty clears.
	require.NoError(t, db.SetCredential(ctx, ""))
	token, err = db.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestCredentialKeeperCaches(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)
	require.NoError(t, db.SetCredential(ctx, "RGAPI-abc"))

	keeper := &CredentialKeeper{Store: db}
	assert.Equal(t, "RGAPI-abc", keeper.Credential())

	require.NoError(t, keeper.SetCredential("RGAPI-def"))
	assert.Equal(t, "RGAPI-def", keeper.Credential())

	// The write went through to the store.
	token, err := db.GetCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RGAPI-def", token)
}

func TestPlayerRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	player := &core.Player{RiotID: "Faker#KR1", Region: core.RegionKR}
	require.NoError(t, db.AddPlayer(ctx, player))

	// Duplicate adds are a no-op.
	require.NoError(t, db.AddPlayer(ctx, player))

	players, err := db.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Faker#KR1", players[0].RiotID)
	assert.Equal(t, core.RegionKR, players[0].Region)

	// Persist a ranked snapshot.
	player.SummonerID = "summoner-abc"
	player.PUUID = "puuid-123"
	player.Ranked = &core.RankedInfo{
		Tier:         core.TierChallenger,
		Rank:         core.DivisionI,
		LeaguePoints: 1374,
		Wins:         312,
		Losses:       201,
	}
	player.LastUpdated = time.Now().UTC()
	require.NoError(t, db.SavePlayerRanked(ctx, player))

	fetched, err := db.GetPlayer(ctx, "Faker#KR1")
	require.NoError(t, err)
	require.NotNil(t, fetched.Ranked)
	assert.Equal(t, core.TierChallenger, fetched.Ranked.Tier)
	assert.Equal(t, 1374, fetched.Ranked.LeaguePoints)
	assert.Equal(t, "puuid-123", fetched.PUUID)

	require.NoError(t, db.RemovePlayer(ctx, "Faker#KR1"))
	_, err = db.GetPlayer(ctx, "Faker#KR1")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestLookupHistory(t *testing.T) {
	ctx := context.Background()
	db := openTestStore(t)

	info := &core.RankedInfo{
		Tier:         core.TierGold,
		Rank:         core.DivisionII,
		LeaguePoints: 45,
		Wins:         120,
		Losses:       80,
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, db.AppendLookup(ctx, "Faker#KR1", core.RegionKR, "synthetic", info))
	}
	require.NoError(t, db.AppendLookup(ctx, "Other#NA1", core.RegionNA1, "riot", info))

	records, err := db.RecentLookups(ctx, "Faker#KR1", 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "synthetic", records[0].Source)
	assert.Equal(t, core.TierGold, records[0].Tier)

	// Limit caps the result.
	records, err = db.RecentLookups(ctx, "Faker#KR1", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
