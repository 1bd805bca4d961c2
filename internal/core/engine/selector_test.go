package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlens/riftlens/internal/core"
)

// namedClient is a core.Client stub identified only by its source string.
type namedClient struct {
	source string
}

func (c *namedClient) GetRankedInfo(ctx context.Context, riotID string, region core.Region) (*core.RankedInfo, error) {
	return &core.RankedInfo{SummonerName: c.source}, nil
}

func (c *namedClient) UpdatePlayer(ctx context.Context, player *core.Player) error {
	return nil
}

func (c *namedClient) IsInGame(ctx context.Context, player *core.Player) (bool, error) {
	return false, nil
}

func (c *namedClient) Source() string { return c.source }

func newTestSelector() *Selector {
	return NewSelector(&namedClient{source: "riot"}, &namedClient{source: "synthetic"}, &MemoryCredential{})
}

func TestSelectorDefaultsToSynthetic(t *testing.T) {
	s := newTestSelector()

	assert.False(t, s.HasCredential())
	assert.Equal(t, "synthetic", s.Source())

	info, err := s.GetRankedInfo(context.Background(), "Faker#KR1", core.RegionNA1)
	require.NoError(t, err)
	assert.Equal(t, "synthetic", info.SummonerName)
}

func TestSelectorSwitchesOnCredential(t *testing.T) {
	s := newTestSelector()

	require.NoError(t, s.SetCredential("RGAPI-test-key"))
	assert.True(t, s.HasCredential())
	assert.Equal(t, "riot", s.Source())

	// Clearing the credential drops back to synthetic.
	require.NoError(t, s.SetCredential(""))
	assert.False(t, s.HasCredential())
	assert.Equal(t, "synthetic", s.Source())
}

func TestSelectorForceSynthetic(t *testing.T) {
	s := newTestSelector()
	require.NoError(t, s.SetCredential("RGAPI-test-key"))

	s.ForceSynthetic()
	assert.Equal(t, "synthetic", s.Source(), "forced synthetic wins over a present credential")

	// Setting a credential resets to automatic selection.
	require.NoError(t, s.SetCredential("RGAPI-other-key"))
	assert.Equal(t, "riot", s.Source())
}

func TestSelectorForceReal(t *testing.T) {
	s := newTestSelector()

	require.ErrorIs(t, s.ForceReal(), ErrNoCredential)
	assert.Equal(t, "synthetic", s.Source())

	require.NoError(t, s.SetCredential("RGAPI-test-key"))
	require.NoError(t, s.ForceReal())
	assert.Equal(t, "riot", s.Source())
}

func TestMemoryCredentialTrimsWhitespace(t *testing.T) {
	m := &MemoryCredential{}
	require.NoError(t, m.SetCredential("  RGAPI-key  "))
	assert.Equal(t, "RGAPI-key", m.Credential())
}
