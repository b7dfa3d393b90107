package cli

import (
	"github.com/parka-dev/parka/internal/output"
	"github.com/spf13/cobra"
)

var getDefault string

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read a configuration value",
	Long: `Read a value from the configuration document. Unknown keys and a
missing configuration file fall back to --default instead of failing.

Examples:
  parka get domain
  parka get share_token --default none
  parka get paths --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getDefault, "default", "", "Value to return when the key is not set")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	var fallback interface{}
	if cmd.Flags().Changed("default") {
		fallback = getDefault
	}

	value, err := store.Get(args[0], fallback)
	if err != nil {
		return err
	}

	if value == nil {
		output.Info("%s is not set", args[0])
		return nil
	}

	return outputValue(value)
}
