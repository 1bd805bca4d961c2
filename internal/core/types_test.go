package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierEnumeration(t *testing.T) {
	require.Len(t, Tiers, 9)

	// Apex tiers carry no divisions.
	assert.False(t, TierMaster.HasDivisions())
	assert.False(t, TierGrandmaster.HasDivisions())
	assert.False(t, TierChallenger.HasDivisions())

	// Everything below Master is divided.
	assert.True(t, TierIron.HasDivisions())
	assert.True(t, TierGold.HasDivisions())
	assert.True(t, TierDiamond.HasDivisions())
}

func TestDivisionOrder(t *testing.T) {
	require.Equal(t, []Division{DivisionIV, DivisionIII, DivisionII, DivisionI}, Divisions)
}
