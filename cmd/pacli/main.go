// Pacli is the command-line client for the Pali todo service.
//
// It covers the full todo lifecycle (add, list, get, update, delete,
// toggle, search), server setup (init), API key administration, and
// local configuration. Todo IDs may be given as unique prefixes; the
// full UUID is only needed when a prefix is ambiguous.
//
// Usage:
//
//	pacli [command] [flags]
//
// See 'pacli --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/config"
	"github.com/pali/pali-terminal/internal/logging"
	"github.com/pali/pali-terminal/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacli",
	Short: "Pali Todo Manager CLI",
	Long: `A command-line client for the Pali todo service.

Manage todos from scripts and the shell: add, list, update, toggle,
delete, and search. Todo IDs may be abbreviated to any unique prefix.

Run 'pacli init <url>' against a fresh server to set up the endpoint
and admin key, or 'pacli config' to point at an existing one.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pacli %s (commit: %s)\n", version.Version, version.Commit)
	},
}

// newClient loads the config file and builds an authenticated client.
func newClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return api.NewClient(cfg), nil
}
