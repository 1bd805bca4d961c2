package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/riftlens/riftlens/internal/config"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show the configured API rate limits",
	RunE:  runLimits,
}

func init() {
	rootCmd.AddCommand(limitsCmd)
}

func runLimits(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Limit", "Value"})
	t.AppendRow(table.Row{"Per second", fmt.Sprintf("%d requests", cfg.Riot.PerSecondLimit)})
	t.AppendRow(table.Row{"Per minute", fmt.Sprintf("%d requests", cfg.Riot.PerMinuteLimit)})
	t.AppendRow(table.Row{"Inter-request delay", cfg.Riot.InterRequestDelay.String()})
	t.AppendRow(table.Row{"Request timeout", cfg.Riot.Timeout.String()})
	fmt.Println(t.Render())

	return nil
}
