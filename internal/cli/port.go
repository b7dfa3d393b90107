package cli

import (
	"fmt"
	"strconv"

	"github.com/parka-dev/parka/internal/config"
	"github.com/spf13/cobra"
)

var portCmd = &cobra.Command{
	Use:   "port [port]",
	Short: "Show or set the listening port",
	Long: `Show the port local sites are served on, or set a new one.

Examples:
  parka port
  parka port 8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPort,
}

func init() {
	rootCmd.AddCommand(portCmd)
}

func runPort(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		value, err := store.Get("port", config.DefaultPort)
		if err != nil {
			return err
		}
		return outputValue(value)
	}

	port := args[0]
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port: %s", port)
	}

	// The port is stored as a string, matching the document format
	doc, err := store.Set("port", port)
	if err != nil {
		return fmt.Errorf("failed to set port: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"port":    doc.Port,
		},
		"Sites are now served on port %s", doc.Port,
	)
}
