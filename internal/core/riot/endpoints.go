package riot

import (
	"fmt"
	"net/url"

	"github.com/riftlens/riftlens/internal/core"
)

// Endpoints builds request URLs for the upstream API. BaseURL overrides
// the production hosts for tests; when set, cluster and region prefixes
// become path segments on the single test host.
type Endpoints struct {
	BaseURL string
}

func (e Endpoints) host(prefix string) string {
	if e.BaseURL != "" {
		return fmt.Sprintf("%s/%s", e.BaseURL, prefix)
	}
	return fmt.Sprintf("https://%s.api.riotgames.com", prefix)
}

// AccountByRiotID resolves a Riot ID to an account. Identity resolution
// always targets the fixed default cluster, not the player's own region;
// account data is replicated across clusters upstream.
func (e Endpoints) AccountByRiotID(identity core.Identity) string {
	return fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		e.host(string(core.DefaultCluster)),
		url.PathEscape(identity.GameName),
		url.PathEscape(identity.TagLine))
}

// SummonerByPUUID resolves a PUUID to the platform summoner record.
func (e Endpoints) SummonerByPUUID(region core.Region, puuid string) string {
	return fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		e.host(string(region)), url.PathEscape(puuid))
}

// LeagueEntriesByPUUID lists ranked-queue entries for a summoner.
func (e Endpoints) LeagueEntriesByPUUID(region core.Region, puuid string) string {
	return fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s",
		e.host(string(region)), url.PathEscape(puuid))
}

// ActiveGameByPUUID queries the live-game status of a summoner.
func (e Endpoints) ActiveGameByPUUID(region core.Region, puuid string) string {
	return fmt.Sprintf("%s/lol/spectator/v5/active-games/by-summoner/%s",
		e.host(string(region)), url.PathEscape(puuid))
}
