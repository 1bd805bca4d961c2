package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <riot-id>",
	Short: "Show recent lookup history for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	riotID := strings.TrimSpace(args[0])

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	records, err := db.RecentLookups(ctx, riotID, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No lookup history for %s\n", riotID)
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"When", "Rank", "LP", "W/L", "Source"})
	for _, rec := range records {
		rank := string(rec.Tier)
		if rec.Tier.HasDivisions() && rec.Rank != "" {
			rank = fmt.Sprintf("%s %s", rec.Tier, rec.Rank)
		}
		t.AppendRow(table.Row{
			rec.LookedUpAt.Format("2006-01-02 15:04"),
			rank,
			rec.LeaguePoints,
			fmt.Sprintf("%d/%d", rec.Wins, rec.Losses),
			rec.Source,
		})
	}
	fmt.Println(t.Render())

	return nil
}
