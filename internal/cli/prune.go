package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop watched paths that no longer exist",
	Long: `Remove entries from the watched paths list whose directories no
longer exist on disk. Does nothing when parka is not installed yet.

Examples:
  parka prune`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if err := store.Prune(); err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	paths, err := store.Paths()
	if err != nil {
		return err
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"paths":   paths,
		},
		"Pruned stale paths (%d remaining)", len(paths),
	)
}
