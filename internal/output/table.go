package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/riftlens/riftlens/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatRanked renders one ranked lookup as a table.
func (f *TableFormatter) FormatRanked(info *core.RankedInfo) (string, error) {
	if info == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Summoner", "Level", "Rank", "LP", "W/L", "Win Rate"})
	t.AppendRow(table.Row{
		info.SummonerName,
		info.SummonerLevel,
		rankLabel(info),
		info.LeaguePoints,
		fmt.Sprintf("%d/%d", info.Wins, info.Losses),
		winRateLabel(info.Wins, info.Losses),
	})

	rendered := t.Render()
	if badges := badgeLine(info); badges != "" {
		rendered += "\n" + badges
	}
	return rendered, nil
}

// FormatRoster renders the tracked roster as a table.
func (f *TableFormatter) FormatRoster(players []*core.Player) (string, error) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Riot ID", "Region", "Rank", "LP", "W/L", "Updated"})

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
		updated := "-"
		if !p.LastUpdated.IsZero() {
			updated = p.LastUpdated.Format("2006-01-02 15:04")
		}
		t.AppendRow(table.Row{p.RiotID, string(p.Region), rank, lp, wl, updated})
	}

	t.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("%d tracked", len(players))})
	return t.Render(), nil
}

// badgeLine summarizes streak and fresh-blood flags under the table.
func badgeLine(info *core.RankedInfo) string {
	badges := []string{}
	if info.HotStreak {
		badges = append(badges, "hot streak")
	}
	if info.FreshBlood {
		badges = append(badges, "fresh blood")
	}
	if info.Veteran {
		badges = append(badges, "veteran")
	}
	if info.Inactive {
		badges = append(badges, "inactive")
	}
	if len(badges) == 0 {
		return ""
	}
	line := badges[0]
	for _, b := range badges[1:] {
		line += ", " + b
	}
	return line
}
