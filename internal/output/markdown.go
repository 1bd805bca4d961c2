package output

import (
	"fmt"
	"strings"

	"github.com/riftlens/riftlens/internal/core"
)

// MarkdownFormatter renders results as GitHub-flavored markdown tables.
type MarkdownFormatter struct{}

// FormatRanked renders one ranked lookup as a markdown table.
func (f *MarkdownFormatter) FormatRanked(info *core.RankedInfo) (string, error) {
	if info == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("| Summoner | Level | Rank | LP | W/L | Win Rate |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d | %s | %d | %d/%d | %s |\n",
		info.SummonerName,
		info.SummonerLevel,
		rankLabel(info),
		info.LeaguePoints,
		info.Wins, info.Losses,
		winRateLabel(info.Wins, info.Losses),
	)

	return strings.TrimRight(b.String(), "\n"), nil
}

// FormatRoster renders the roster as a markdown table.
func (f *MarkdownFormatter) FormatRoster(players []*core.Player) (string, error) {
	var b strings.Builder
	b.WriteString("| Riot ID | Region | Rank | LP | W/L |\n")
	b.WriteString("|---|---|---|---|---|\n")

	for _, p := range players {
		if p == nil {
			continue
		}
		rank, lp, wl := "-", "-", "-"
		if p.Ranked != nil {
			rank = rankLabel(p.Ranked)
			lp = fmt.Sprintf("%d", p.Ranked.LeaguePoints)
			wl = fmt.Sprintf("%d/%d", p.Ranked.Wins, p.Ranked.Losses)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", p.RiotID, p.Region, rank, lp, wl)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
