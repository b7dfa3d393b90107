package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a configuration value",
	Long: `Write a value into the configuration document. The value is parsed
as JSON when possible, otherwise stored as a string. Requires parka to be
installed.

Examples:
  parka set domain localhost
  parka set share_token abc123
  parka set tld_history '["test","dev"]'`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	// A value that parses as JSON is stored typed; anything else is a string
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	if _, err := store.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"key":     key,
			"value":   value,
		},
		"Set %s", key,
	)
}
