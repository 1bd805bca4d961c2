package core

import "time"

// Tier is a ranked ladder tier, ordered from lowest to highest.
type Tier string

const (
	TierIron        Tier = "IRON"
	TierBronze      Tier = "BRONZE"
	TierSilver      Tier = "SILVER"
	TierGold        Tier = "GOLD"
	TierPlatinum    Tier = "PLATINUM"
	TierDiamond     Tier = "DIAMOND"
	TierMaster      Tier = "MASTER"
	TierGrandmaster Tier = "GRANDMASTER"
	TierChallenger  Tier = "CHALLENGER"
)

// Tiers lists all ladder tiers in ascending order.
var Tiers = []Tier{
	TierIron, TierBronze, TierSilver, TierGold, TierPlatinum,
	TierDiamond, TierMaster, TierGrandmaster, TierChallenger,
}

// Division is the sub-tier rank within a tier. Apex tiers
// (MASTER and above) do not split into divisions.
type Division string

const (
	DivisionIV  Division = "IV"
	DivisionIII Division = "III"
	DivisionII  Division = "II"
	DivisionI   Division = "I"
)

// Divisions lists divisions from lowest to highest.
var Divisions = []Division{DivisionIV, DivisionIII, DivisionII, DivisionI}

// HasDivisions reports whether the tier splits into divisions.
func (t Tier) HasDivisions() bool {
	switch t {
	case TierMaster, TierGrandmaster, TierChallenger:
		return false
	default:
		return true
	}
}

// QueueSolo is the primary 5v5 solo ranked queue. Only entries for
// this queue are surfaced; other queue kinds are ignored.
const QueueSolo = "RANKED_SOLO_5x5"

// RankedEntry is one ranked-queue standing as reported by the upstream API.
type RankedEntry struct {
	QueueType    string   `json:"queueType"`
	Tier         Tier     `json:"tier"`
	Rank         Division `json:"rank"`
	LeaguePoints int      `json:"leaguePoints"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Veteran      bool     `json:"veteran"`
	Inactive     bool     `json:"inactive"`
	FreshBlood   bool     `json:"freshBlood"`
	HotStreak    bool     `json:"hotStreak"`
}

// RankedInfo is the assembled result of a ranked lookup: identity,
// summoner profile, and the selected solo-queue entry. Immutable once
// constructed.
type RankedInfo struct {
	SummonerID    string    `json:"summonerId"`
	PUUID         string    `json:"puuid,omitempty"`
	SummonerName  string    `json:"summonerName"`
	SummonerLevel int64     `json:"summonerLevel"`
	Tier          Tier      `json:"tier"`
	Rank          Division  `json:"rank,omitempty"`
	LeaguePoints  int       `json:"leaguePoints"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	Veteran       bool      `json:"veteran"`
	Inactive      bool      `json:"inactive"`
	FreshBlood    bool      `json:"freshBlood"`
	HotStreak     bool      `json:"hotStreak"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// Player is a tracked roster entry. SummonerID and PUUID are cached
// after the first successful resolution to avoid repeat identity lookups.
type Player struct {
	ID          int64       `json:"id,omitempty" yaml:"-"`
	RiotID      string      `json:"riotId" yaml:"riot_id"`
	Region      Region      `json:"region" yaml:"region"`
	SummonerID  string      `json:"summonerId,omitempty" yaml:"-"`
	PUUID       string      `json:"puuid,omitempty" yaml:"-"`
	Ranked      *RankedInfo `json:"ranked,omitempty" yaml:"-"`
	LastUpdated time.Time   `json:"lastUpdated,omitempty" yaml:"-"`
}
