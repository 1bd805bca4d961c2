package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/riftlens/riftlens/internal/core"
	"github.com/riftlens/riftlens/internal/observability"
	"github.com/riftlens/riftlens/internal/output"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the tracked player roster",
}

var rosterAddCmd = &cobra.Command{
	Use:   "add <riot-id>",
	Short: "Add a player to the roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterAdd,
}

var rosterRemoveCmd = &cobra.Command{
	Use:   "remove <riot-id>",
	Short: "Remove a player from the roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterRemove,
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked players with their last known standing",
	RunE:  runRosterList,
}

var rosterUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh ranked data for every tracked player",
	Long: `Refresh ranked data for every tracked player. Requests are queued
through the rate-limited scheduler, so large rosters update without
tripping API quotas.`,
	RunE: runRosterUpdate,
}

var rosterExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the roster to a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterExport,
}

var rosterImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import roster entries from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterImport,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
	rosterCmd.AddCommand(rosterAddCmd)
	rosterCmd.AddCommand(rosterRemoveCmd)
	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterUpdateCmd)
	rosterCmd.AddCommand(rosterExportCmd)
	rosterCmd.AddCommand(rosterImportCmd)

	rosterAddCmd.Flags().String("region", "na1", "Platform region (na1, euw1, kr, ...)")
	rosterListCmd.Flags().String("output", "table", "Output format: table, json, markdown")
	rosterUpdateCmd.Flags().Bool("synthetic", false, "Force the synthetic provider even when a credential exists")
}

// rosterFile is the import/export document shape.
type rosterFile struct {
	Players []rosterEntry `yaml:"players"`
}

type rosterEntry struct {
	RiotID string `yaml:"riot_id"`
	Region string `yaml:"region"`
}

func runRosterAdd(cmd *cobra.Command, args []string) error {
	riotID := strings.TrimSpace(args[0])

	regionRaw, err := cmd.Flags().GetString("region")
	if err != nil {
		return err
	}
	region, err := core.ParseRegion(regionRaw)
	if err != nil {
		return err
	}

	// Validate the identity shape before persisting.
	if _, err := core.ParseIdentity(riotID); err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	player := &core.Player{RiotID: riotID, Region: region}
	if err := db.AddPlayer(ctx, player); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s) to roster\n", riotID, region)
	return nil
}

func runRosterRemove(cmd *cobra.Command, args []string) error {
	riotID := strings.TrimSpace(args[0])

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	if err := db.RemovePlayer(ctx, riotID); err != nil {
		return err
	}

	fmt.Printf("Removed %s from roster\n", riotID)
	return nil
}

func runRosterList(cmd *cobra.Command, args []string) error {
	outputRaw, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(outputRaw)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	players, err := db.ListPlayers(ctx)
	if err != nil {
		return err
	}

	rendered, err := output.NewFormatter(format).FormatRoster(players)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

func runRosterUpdate(cmd *cobra.Command, args []string) error {
	forceSynthetic, err := cmd.Flags().GetBool("synthetic")
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

	players, err := db.ListPlayers(ctx)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Println("Roster is empty - add players with 'roster add'")
		return nil
	}

	updated, failed := 0, 0
	for _, player := range players {
		if err := selector.UpdatePlayer(ctx, player); err != nil {
			failed++
			observability.CLILogger.Warn("Failed to update player",
				zap.String("riot_id", player.RiotID),
				zap.Error(err))
			continue
		}
		if err := db.SavePlayerRanked(ctx, player); err != nil {
			failed++
			observability.CLILogger.Warn("Failed to persist player update",
				zap.String("riot_id", player.RiotID),
				zap.Error(err))
			continue
		}
		updated++
	}

	fmt.Printf("Updated %d/%d players (source: %s)\n", updated, len(players), selector.Source())
	if failed > 0 {
		fmt.Printf("%d players failed to update\n", failed)
	}
	return nil
}

func runRosterExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	players, err := db.ListPlayers(ctx)
	if err != nil {
		return err
	}

	doc := rosterFile{Players: make([]rosterEntry, 0, len(players))}
	for _, p := range players {
		doc.Players = append(doc.Players, rosterEntry{RiotID: p.RiotID, Region: string(p.Region)})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	fmt.Printf("Exported %d players to %s\n", len(doc.Players), path)
	return nil
}

func runRosterImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse roster file: %w", err)
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	imported := 0
	for _, entry := range doc.Players {
		riotID := strings.TrimSpace(entry.RiotID)
		if _, err := core.ParseIdentity(riotID); err != nil {
			observability.CLILogger.Warn("Skipping invalid roster entry",
				zap.String("riot_id", riotID),
				zap.Error(err))
			continue
		}
		region, err := core.ParseRegion(entry.Region)
		if err != nil {
			observability.CLILogger.Warn("Skipping roster entry with unknown region",
				zap.String("riot_id", riotID),
				zap.String("region", entry.Region))
			continue
		}
		if err := db.AddPlayer(ctx, &core.Player{RiotID: riotID, Region: region}); err != nil {
			return err
		}
		imported++
	}

	fmt.Printf("Imported %d players from %s\n", imported, path)
	return nil
}
