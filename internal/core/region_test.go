package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	t.Run("KnownRegions", func(t *testing.T) {
		for _, region := range Regions() {
			parsed, err := ParseRegion(string(region))
			require.NoError(t, err)
			assert.Equal(t, region, parsed)
		}
	})

	t.Run("NormalizesCase", func(t *testing.T) {
		parsed, err := ParseRegion("EUW1")
		require.NoError(t, err)
		assert.Equal(t, RegionEUW1, parsed)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseRegion("moon1")
		require.Error(t, err)
	})
}

func TestRegionCluster(t *testing.T) {
	cases := []struct {
		region  Region
		cluster Cluster
	}{
		{RegionNA1, ClusterAmericas},
		{RegionBR1, ClusterAmericas},
		{RegionEUW1, ClusterEurope},
		{RegionEUN1, ClusterEurope},
		{RegionKR, ClusterAsia},
		{RegionJP1, ClusterAsia},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.cluster, tc.region.Cluster(), "region %s", tc.region)
	}
}

func TestEveryRegionHasCluster(t *testing.T) {
	for _, region := range Regions() {
		assert.NotEmpty(t, region.Cluster(), "region %s must map to a cluster", region)
	}
}
