package cli

import (
	"os"

	"github.com/parka-dev/parka/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	yamlOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "parka",
	Short: "Local development environment configuration",
	Long: `parka manages the configuration for your local development environment.

It keeps a list of parked directories to scan for sites, the local domain
suffix and listening port, and bootstraps the supporting directory layout
(drivers, sites, certificates, logs) under ~/.config/parka.`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
