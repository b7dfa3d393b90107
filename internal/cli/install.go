package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Bootstrap the parka configuration",
	Long: `Create the parka configuration directory layout and base configuration.

Install is idempotent: re-running it leaves existing settings, parked
paths and custom drivers untouched.

Examples:
  parka install
  sudo parka install   # the tree is still owned by the invoking user`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if err := store.Install(); err != nil {
		return fmt.Errorf("install failed: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"root":    store.Root(),
		},
		"Parka installed (configuration at %s)", store.Root(),
	)
}
