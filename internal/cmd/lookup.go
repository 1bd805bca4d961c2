package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riftlens/riftlens/internal/core"
	"github.com/riftlens/riftlens/internal/core/riot"
	"github.com/riftlens/riftlens/internal/observability"
	"github.com/riftlens/riftlens/internal/output"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <riot-id>",
	Short: "Look up a player's ranked standing",
	Long: `Look up the current solo queue standing for a player identified by
Riot ID (GameName#TagLine). Uses the Riot API when a credential is
configured; otherwise returns deterministic synthetic data.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().String("region", "na1", "Platform region (na1, euw1, kr, ...)")
	lookupCmd.Flags().String("output", "table", "Output format: table, json, markdown")
	lookupCmd.Flags().Bool("synthetic", false, "Force the synthetic provider even when a credential exists")
	lookupCmd.Flags().Bool("no-history", false, "Skip recording the lookup in history")
}

func runLookup(cmd *cobra.Command, args []string) error {
	riotID := strings.TrimSpace(args[0])

	regionRaw, err := cmd.Flags().GetString("region")
	if err != nil {
		return err
	}
	outputRaw, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	forceSynthetic, err := cmd.Flags().GetBool("synthetic")
	if err != nil {
		return err
	}
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputRaw)
	if err != nil {
		return err
	}

	region, err := core.ParseRegion(regionRaw)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	selector, err := newSelector(ctx, db)
	if err != nil {
		return err
	}
	if forceSynthetic {
		selector.ForceSynthetic()
	}

	observability.CLILogger.Debug("Looking up player",
		zap.String("riot_id", riotID),
		zap.String("region", string(region)),
		zap.String("source", selector.Source()))

	info, err := selector.GetRankedInfo(ctx, riotID, region)
	if err != nil {
		var noData *core.NoRankedDataError
		if errors.As(err, &noData) {
			fmt.Printf("%s has no solo queue entry this season\n", riotID)
			return nil
		}
		if riot.IsRateLimited(err) {
			// The scheduler should make this unreachable; a 429 here means
			// the configured quotas disagree with the key's actual limits.
			observability.CLILogger.Warn("Upstream rate limit hit despite local pacing",
				zap.String("riot_id", riotID))
		}
		return err
	}

	if !noHistory {
		if err := db.AppendLookup(ctx, riotID, region, selector.Source(), info); err != nil {
			observability.CLILogger.Warn("Failed to record lookup history", zap.Error(err))
		}
	}

	rendered, err := output.NewFormatter(format).FormatRanked(info)
	if err != nil {
		return err
	}
	fmt.Println(rendered)

	if format == output.FormatTable && selector.Source() == "synthetic" {
		fmt.Println("(synthetic data - no API credential configured)")
	}

	return nil
}
