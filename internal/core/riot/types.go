package riot

import "github.com/riftlens/riftlens/internal/core"

// Account is the account-v1 response for a Riot ID lookup.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the summoner-v4 platform record.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// LeagueEntry mirrors core.RankedEntry plus the summoner linkage fields
// the league-v4 endpoint includes.
type LeagueEntry struct {
	core.RankedEntry
	LeagueID   string `json:"leagueId"`
	SummonerID string `json:"summonerId"`
}

// CurrentGame is the subset of the spectator-v5 response we consume.
// A successful decode means the player is in a live game.
type CurrentGame struct {
	GameID     int64  `json:"gameId"`
	GameMode   string `json:"gameMode"`
	GameType   string `json:"gameType"`
	PlatformID string `json:"platformId"`
	GameLength int64  `json:"gameLength"`
}

// apiStatusBody is the upstream error envelope on non-2xx responses.
type apiStatusBody struct {
	Status struct {
		Message    string `json:"message"`
		StatusCode int    `json:"status_code"`
	} `json:"status"`
}
