package cli

import (
	"github.com/spf13/cobra"
)

var fqdnCmd = &cobra.Command{
	Use:   "fqdn <site>",
	Short: "Print the fully qualified hostname for a site",
	Long: `Qualify a site name with the configured domain suffix. A name that
already carries the suffix is printed unchanged.

Examples:
  parka fqdn blog        # blog.test
  parka fqdn blog.test   # blog.test`,
	Args: cobra.ExactArgs(1),
	RunE: runFqdn,
}

func init() {
	rootCmd.AddCommand(fqdnCmd)
}

func runFqdn(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	hostname, err := store.ParseDomain(args[0])
	if err != nil {
		return err
	}

	return outputValue(hostname)
}
