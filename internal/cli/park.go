package cli

import (
	"fmt"
	"os"

	"github.com/parka-dev/parka/internal/output"
	"github.com/spf13/cobra"
)

var parkPrepend bool

var parkCmd = &cobra.Command{
	Use:     "park [path]",
	Aliases: []string{"add"},
	Short:   "Add a directory to the watched paths",
	Long: `Add a directory to the list of paths parka scans for sites.
Defaults to the current working directory when no path is given.

Parking a directory that is already watched keeps its position; with
--prepend it moves to the front of the list.

Examples:
  parka park
  parka park ~/projects
  parka park ~/clients --prepend`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPark,
}

func init() {
	parkCmd.Flags().BoolVar(&parkPrepend, "prepend", false, "Insert the path at the front of the list")

	rootCmd.AddCommand(parkCmd)
}

func runPark(cmd *cobra.Command, args []string) error {
	path, err := resolvePathArg(args)
	if err != nil {
		return err
	}

	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		output.Warn("%s is not a directory; it will be dropped on the next prune", path)
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	if err := store.AddPath(path, parkPrepend); err != nil {
		return fmt.Errorf("failed to park %s: %w", path, err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"path":    path,
			"prepend": parkPrepend,
		},
		"Parked %s", path,
	)
}
