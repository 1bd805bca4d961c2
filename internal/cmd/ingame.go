package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riftlens/riftlens/internal/core"
)

var ingameCmd = &cobra.Command{
	Use:   "ingame <riot-id>",
	Short: "Check whether a player is currently in a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runInGame,
}

func init() {
	rootCmd.AddCommand(ingameCmd)

	ingameCmd.Flags().String("region", "na1", "Platform region (na1, euw1, kr, ...)")
	ingameCmd.Flags().Bool("synthetic", false, "Force the synthetic provider even when a credential exists")
}

func runInGame(cmd *cobra.Command, args []string) error {
	riotID := strings.TrimSpace(args[0])

	regionRaw, err := cmd.Flags().GetString("region")
	if err != nil {
		return err
	}
	forceSynthetic, err := cmd.Flags().GetBool("synthetic")
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

	// Reuse the tracked roster entry when available so cached PUUIDs
	// save a resolution round trip.
	player, err := db.GetPlayer(ctx, riotID)
	if err != nil {
		player = &core.Player{RiotID: riotID, Region: region}
	}

	inGame, err := selector.IsInGame(ctx, player)
	if err != nil {
		return err
	}

	if inGame {
		fmt.Printf("%s is currently in a game\n", riotID)
	} else {
		fmt.Printf("%s is not in a game\n", riotID)
	}

	return nil
}
