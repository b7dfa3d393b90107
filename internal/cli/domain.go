package cli

import (
	"fmt"
	"strings"

	"github.com/parka-dev/parka/internal/config"
	"github.com/spf13/cobra"
)

var domainCmd = &cobra.Command{
	Use:     "domain [name]",
	Aliases: []string{"tld"},
	Short:   "Show or set the local domain suffix",
	Long: `Show the domain suffix sites are served under, or set a new one.
Sites become reachable as <site>.<domain>.

Examples:
  parka domain
  parka domain localhost`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDomain,
}

func init() {
	rootCmd.AddCommand(domainCmd)
}

func runDomain(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		value, err := store.Get("domain", config.DefaultDomain)
		if err != nil {
			return err
		}
		return outputValue(value)
	}

	domain := strings.Trim(strings.TrimSpace(args[0]), ".")
	if domain == "" {
		return fmt.Errorf("domain cannot be empty")
	}
	if strings.Contains(domain, " ") {
		return fmt.Errorf("domain cannot contain spaces")
	}

	doc, err := store.Set("domain", domain)
	if err != nil {
		return fmt.Errorf("failed to set domain: %w", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"domain":  doc.Domain,
		},
		"Sites are now served under *.%s", doc.Domain,
	)
}
