package cli

import (
	"fmt"
	"strings"

	"github.com/parka-dev/parka/internal/output"
	"github.com/spf13/cobra"
)

var forceUninstall bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the parka configuration tree",
	Long: `Remove the entire parka configuration directory, including parked
paths, drivers, certificates and logs. This cannot be undone.

Examples:
  parka uninstall
  parka uninstall --force`,
	Args: cobra.NoArgs,
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVarP(&forceUninstall, "force", "f", false, "Skip confirmation prompt")

	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if !forceUninstall {
		output.Print("Remove the parka configuration at %s? This cannot be undone. [y/N]: ", store.Root())
		answer, _ := deps.Stdin.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			output.Info("Uninstall cancelled")
			return nil
		}
	}

	if err := store.Uninstall(); err != nil {
		return fmt.Errorf("uninstall failed: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"root":    store.Root(),
		},
		"Parka configuration removed",
	)
}
