package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the Riot API credential",
	Long: `Manage the stored Riot API credential. With a credential configured,
lookups hit the live API; without one, the synthetic provider answers.`,
}

var credentialSetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store an API credential",
	Args:  cobra.ExactArgs(1),
	RunE:  runCredentialSet,
}

var credentialShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored credential (redacted)",
	RunE:  runCredentialShow,
}

var credentialClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored credential",
	RunE:  runCredentialClear,
}

func init() {
	rootCmd.AddCommand(credentialCmd)
	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialShowCmd)
	credentialCmd.AddCommand(credentialClearCmd)
}

func runCredentialSet(cmd *cobra.Command, args []string) error {
	token := strings.TrimSpace(args[0])
	if token == "" {
		return fmt.Errorf("credential must not be empty")
	}

	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	if err := db.SetCredential(ctx, token); err != nil {
		return err
	}

	fmt.Println("Credential stored - lookups will use the live API")
	return nil
}

func runCredentialShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	token, err := db.GetCredential(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Println("No credential stored - lookups use synthetic data")
		return nil
	}

	fmt.Printf("Credential: %s\n", redactToken(token))
	return nil
}

func runCredentialClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close() // nolint:errcheck

	if err := db.SetCredential(ctx, ""); err != nil {
		return err
	}

	fmt.Println("Credential cleared - lookups will use synthetic data")
	return nil
}

// redactToken keeps enough of the key to recognize it without exposing it.
func redactToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
