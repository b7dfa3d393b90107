package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parka-dev/parka/internal/output"
)

// loadStore opens the configuration store
func loadStore() (ConfigStore, error) {
	store, err := deps.Stores.Store()
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration store: %w", err)
	}
	return store, nil
}

// resolvePathArg turns an optional path argument into an absolute path,
// defaulting to the current working directory
func resolvePathArg(args []string) (string, error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", args[0], err)
	}
	return abs, nil
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	if yamlOutput {
		return output.YAML(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// outputValue prints a single configuration value in the selected format
func outputValue(value interface{}) error {
	if jsonOutput {
		return output.JSON(value)
	}
	if yamlOutput {
		return output.YAML(value)
	}
	output.Print("%v", value)
	return nil
}
