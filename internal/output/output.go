package output

import (
	"fmt"
	"strings"

	"github.com/riftlens/riftlens/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders ranked lookups and roster listings.
type Formatter interface {
	FormatRanked(info *core.RankedInfo) (string, error)
	FormatRoster(players []*core.Player) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// rankLabel renders "GOLD II" for divided tiers and the bare tier name
// for apex tiers, or "Unranked" when no solo queue entry exists.
func rankLabel(info *core.RankedInfo) string {
	if info == nil || info.Tier == "" {
		return "Unranked"
	}
	if info.Tier.HasDivisions() && info.Rank != "" {
		return fmt.Sprintf("%s %s", info.Tier, info.Rank)
	}
	return string(info.Tier)
}

// winRate returns the win percentage over all recorded games, or -1
// when no games have been played.
func winRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return -1
	}
	return float64(wins) / float64(total) * 100
}

func winRateLabel(wins, losses int) string {
	rate := winRate(wins, losses)
	if rate < 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", rate)
}
