package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/config"
	"github.com/pali/pali-terminal/internal/ui"
)

var keyName string

func init() {
	generateKeyCmd.Flags().StringVar(&keyName, "name", "", "Label for the new key")

	adminCmd.AddCommand(rotateKeyCmd)
	adminCmd.AddCommand(generateKeyCmd)
	adminCmd.AddCommand(listKeysCmd)
	adminCmd.AddCommand(revokeKeyCmd)
	adminCmd.AddCommand(reinitializeCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(adminCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <url>",
	Short: "Initialize a fresh server",
	Long: `Initialize a fresh Pali server and store its admin key.

This only succeeds against a server that has never been initialized.
The endpoint and the returned admin key are written to the local
configuration, so subsequent commands work without further setup.`,
	Example: `  pacli init http://localhost:8787`,
	Args:    cobra.ExactArgs(1),
	RunE:    runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	endpoint := args[0]
	client := api.NewClientWithURL(endpoint, "")

	adminKey, err := client.Initialize()
	if err != nil {
		if api.IsAuthError(err) {
			return fmt.Errorf("server is already initialized; use 'pacli admin reinitialize' with the existing admin key")
		}
		return fmt.Errorf("initialization failed: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Endpoint = endpoint
	cfg.APIKey = adminKey
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("%s Server initialized\n", ui.SuccessStyle.Render("✓"))
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("Endpoint: "), endpoint)
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("Admin key:"), adminKey)
	fmt.Println()
	fmt.Println("The admin key has been saved to your configuration. Keep a copy")
	fmt.Println("somewhere safe; it cannot be retrieved from the server again.")
	return nil
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Server administration",
	Long: `Administrative operations on the server: key rotation, API key
management, and reinitialization. All of these require the admin key
in your configuration.`,
}

var rotateKeyCmd = &cobra.Command{
	Use:   "rotate-key",
	Short: "Rotate the admin key",
	Long: `Replace the admin key with a freshly generated one. The old key
stops working immediately. The new key is stored in the local
configuration.`,
	Args: cobra.NoArgs,
	RunE: runRotateKey,
}

func runRotateKey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := api.NewClient(cfg)
	newKey, err := client.RotateAdminKey()
	if err != nil {
		return fmt.Errorf("key rotation failed: %w", err)
	}

	cfg.APIKey = newKey
	if err := cfg.Save(); err != nil {
		// The server-side rotation already happened; losing the new key
		// here would lock the user out.
		return fmt.Errorf("rotation succeeded but saving the new key failed; new key: %s: %w", newKey, err)
	}

	fmt.Printf("%s Admin key rotated and saved\n", ui.SuccessStyle.Render("✓"))
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("New key:"), newKey)
	return nil
}

var generateKeyCmd = &cobra.Command{
	Use:   "generate-key",
	Short: "Generate a new API key",
	Long: `Generate a non-admin API key for another client or script. The
key value is only shown once.`,
	Example: `  pacli admin generate-key --name "laptop"`,
	Args:    cobra.NoArgs,
	RunE:    runGenerateKey,
}

func runGenerateKey(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	key, err := client.GenerateAPIKey(keyName)
	if err != nil {
		return fmt.Errorf("key generation failed: %w", err)
	}

	fmt.Printf("%s API key generated\n", ui.SuccessStyle.Render("✓"))
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("ID: "), key.ID)
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("Key:"), key.Key)
	fmt.Println()
	fmt.Println("Store this key now; it cannot be shown again.")
	return nil
}

var listKeysCmd = &cobra.Command{
	Use:   "list-keys",
	Short: "List API keys",
	Args:  cobra.NoArgs,
	RunE:  runListKeys,
}

func runListKeys(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	keys, err := client.ListAPIKeys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if len(keys) == 0 {
		fmt.Println("No API keys.")
		return nil
	}

	for _, key := range keys {
		status := ui.SuccessStyle.Render("active")
		if !key.Active {
			status = ui.ErrorStyle.Render("revoked")
		}
		kind := ""
		if key.Admin {
			kind = ui.HeaderStyle.Render(" [admin]")
		}
		name := key.Name
		if name == "" {
			name = "(unnamed)"
		}
		created := time.Unix(key.CreatedAt, 0).Local().Format("2006-01-02")
		fmt.Printf("%s  %-20s %s%s  created %s\n",
			ui.IDStyle.Render(key.ID), name, status, kind, created)
	}
	return nil
}

var revokeKeyCmd = &cobra.Command{
	Use:     "revoke-key <id>",
	Short:   "Revoke an API key",
	Example: `  pacli admin revoke-key k_01h2x...`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRevokeKey,
}

func runRevokeKey(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.RevokeAPIKey(args[0]); err != nil {
		return fmt.Errorf("failed to revoke key: %w", err)
	}

	fmt.Printf("%s Key revoked\n", ui.SuccessStyle.Render("✓"))
	return nil
}

var reinitializeCmd = &cobra.Command{
	Use:   "reinitialize",
	Short: "Wipe the server and start over",
	Long: `Reinitialize the server: all todos and API keys are deleted and a
new admin key is issued. Requires the current admin key.`,
	Args: cobra.NoArgs,
	RunE: runReinitialize,
}

func runReinitialize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client := api.NewClient(cfg)
	adminKey, err := client.Reinitialize()
	if err != nil {
		return fmt.Errorf("reinitialization failed: %w", err)
	}

	cfg.APIKey = adminKey
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("reinitialization succeeded but saving the new key failed; new key: %s: %w", adminKey, err)
	}

	fmt.Printf("%s Server reinitialized; new admin key saved\n", ui.SuccessStyle.Render("✓"))
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("Admin key:"), adminKey)
	return nil
}
