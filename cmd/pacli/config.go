package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/config"
	"github.com/pali/pali-terminal/internal/ui"
)

func init() {
	configCmd.AddCommand(configEndpointCmd)
	configCmd.AddCommand(configKeyCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local configuration",
	Long: `View and modify the local configuration file.

The configuration holds the server endpoint and the API key used to
authenticate. Running 'config' without a subcommand shows the current
values.`,
	Example: `  # Show current configuration
  pacli config

  # Point at a server
  pacli config endpoint https://todos.example.com

  # Store an API key
  pacli config key pk_...`,
	RunE: runConfigShow,
}

var configEndpointCmd = &cobra.Command{
	Use:   "endpoint <url>",
	Short: "Set the server endpoint",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigEndpoint,
}

func runConfigEndpoint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Endpoint = args[0]
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("%s Endpoint set to %s\n", ui.SuccessStyle.Render("✓"), cfg.Endpoint)

	// A quick reachability check; failure is advisory only.
	client := api.NewClient(cfg)
	if err := client.Ping(); err != nil {
		fmt.Printf("%s Could not reach the server: %v\n", ui.ErrorStyle.Render("!"), err)
	}
	return nil
}

var configKeyCmd = &cobra.Command{
	Use:   "key <api-key>",
	Short: "Set the API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigKey,
}

func runConfigKey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.APIKey = args[0]
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("%s API key saved\n", ui.SuccessStyle.Render("✓"))
	return nil
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	keyStatus := ui.ErrorStyle.Render("✗ not set")
	if cfg.HasAPIKey() {
		keyStatus = ui.SuccessStyle.Render("✓ configured")
	}

	fmt.Printf("%s %s\n", ui.LabelStyle.Render("Endpoint:"), cfg.Endpoint)
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("API key: "), keyStatus)
	fmt.Printf("%s %s\n", ui.LabelStyle.Render("File:    "), path)
	return nil
}
