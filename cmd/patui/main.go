// Patui is the interactive terminal interface for the Pali todo service.
//
// It connects to the configured Pali endpoint and presents the todo
// list with keyboard-driven management: add, edit, toggle, delete,
// search, and filtering by priority and completion state.
//
// Usage:
//
//	patui [flags]
//
// Configuration comes from the pacli config file. Run 'pacli init <url>'
// or 'pacli config endpoint <url>' first to point at a server.
// See 'patui --help' for flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/config"
	"github.com/pali/pali-terminal/internal/logging"
	"github.com/pali/pali-terminal/internal/tui"
	"github.com/pali/pali-terminal/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var endpointOverride string

var rootCmd = &cobra.Command{
	Use:   "patui",
	Short: "Pali Interactive Todo Manager",
	Long: `An interactive terminal interface for the Pali todo service.

Presents your todo list with keyboard-driven management: add, edit,
toggle, delete, search, and filtering. Press ? inside the interface
for the full key reference.`,
	Version: version.Version,
	RunE:    runTUI,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&endpointOverride, "endpoint", "", "Server endpoint (overrides configured value)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("patui %s (commit: %s)\n", version.Version, version.Commit)
	},
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if endpointOverride != "" {
		cfg.Endpoint = endpointOverride
	}

	client := api.NewClient(cfg)
	return tui.Run(client, cfg)
}
