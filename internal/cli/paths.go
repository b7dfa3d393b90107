package cli

import (
	"os"

	"github.com/parka-dev/parka/internal/output"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:     "paths",
	Aliases: []string{"ls"},
	Short:   "List the watched paths",
	Long: `List the directories parka scans for sites, in scan order.

Examples:
  parka paths
  parka paths --json
  parka paths --yaml`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	paths, err := store.Paths()
	if err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(paths)
	}
	if yamlOutput {
		return output.YAML(paths)
	}

	if len(paths) == 0 {
		output.Info("No parked paths (run: parka park <dir>)")
		return nil
	}

	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		exists := "no"
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			exists = "yes"
		}
		rows = append(rows, []string{p, exists})
	}

	output.Table([]string{"PATH", "EXISTS"}, rows)
	return nil
}
