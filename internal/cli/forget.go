package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forgetCmd = &cobra.Command{
	Use:     "forget [path]",
	Aliases: []string{"unpark"},
	Short:   "Remove a directory from the watched paths",
	Long: `Remove a directory from the list of paths parka scans for sites.
Defaults to the current working directory when no path is given.

Examples:
  parka forget
  parka forget ~/projects`,
	Args: cobra.MaximumNArgs(1),
	RunE: runForget,
}

func init() {
	rootCmd.AddCommand(forgetCmd)
}

func runForget(cmd *cobra.Command, args []string) error {
	path, err := resolvePathArg(args)
	if err != nil {
		return err
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	if err := store.RemovePath(path); err != nil {
		return fmt.Errorf("failed to forget %s: %w", path, err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"path":    path,
		},
		"Forgot %s", path,
	)
}
