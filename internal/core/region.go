package core

import (
	"fmt"
	"strings"
)

// Region is a platform region code understood by the upstream API.
type Region string

const (
	RegionNA1  Region = "na1"
	RegionBR1  Region = "br1"
	RegionLAN  Region = "la1"
	RegionLAS  Region = "la2"
	RegionOC1  Region = "oc1"
	RegionEUW1 Region = "euw1"
	RegionEUN1 Region = "eun1"
	RegionTR1  Region = "tr1"
	RegionRU   Region = "ru"
	RegionME1  Region = "me1"
	RegionKR   Region = "kr"
	RegionJP1  Region = "jp1"
	RegionSG2  Region = "sg2"
	RegionTW2  Region = "tw2"
	RegionVN2  Region = "vn2"
)

// Cluster is a continental routing cluster. Platform regions map
// many-to-one onto clusters.
type Cluster string

const (
	ClusterAmericas Cluster = "americas"
	ClusterEurope   Cluster = "europe"
	ClusterAsia     Cluster = "asia"
)

// DefaultCluster is the cluster used for account (Riot ID) resolution
// regardless of the requested platform region. The upstream account
// endpoints replicate identity data across clusters, so a single fixed
// cluster is correct; do not route by player region here.
const DefaultCluster = ClusterAmericas

var regionClusters = map[Region]Cluster{
	RegionNA1:  ClusterAmericas,
	RegionBR1:  ClusterAmericas,
	RegionLAN:  ClusterAmericas,
	RegionLAS:  ClusterAmericas,
	RegionOC1:  ClusterAmericas,
	RegionEUW1: ClusterEurope,
	RegionEUN1: ClusterEurope,
	RegionTR1:  ClusterEurope,
	RegionRU:   ClusterEurope,
	RegionME1:  ClusterEurope,
	RegionKR:   ClusterAsia,
	RegionJP1:  ClusterAsia,
	RegionSG2:  ClusterAsia,
	RegionTW2:  ClusterAsia,
	RegionVN2:  ClusterAsia,
}

// ParseRegion validates and normalizes a platform region code.
func ParseRegion(value string) (Region, error) {
	region := Region(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := regionClusters[region]; !ok {
		return "", fmt.Errorf("unknown region %q", value)
	}
	return region, nil
}

// Cluster returns the continental routing cluster for the region.
func (r Region) Cluster() Cluster {
	if cluster, ok := regionClusters[r]; ok {
		return cluster
	}
	return DefaultCluster
}

// Regions lists the supported platform region codes.
func Regions() []Region {
	return []Region{
		RegionNA1, RegionBR1, RegionLAN, RegionLAS, RegionOC1,
		RegionEUW1, RegionEUN1, RegionTR1, RegionRU, RegionME1,
		RegionKR, RegionJP1, RegionSG2, RegionTW2, RegionVN2,
	}
}
