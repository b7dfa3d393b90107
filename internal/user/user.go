// Package user resolves the identity of the real invoking user.
//
// When parka runs under sudo, the process's effective user is root but the
// configuration tree must belong to the person who typed the command. The
// resolver therefore prefers the SUDO_USER environment variable over the
// process user.
package user

import (
	"fmt"
	"os"
	osuser "os/user"
)

// Resolver resolves the username that should own the configuration tree.
type Resolver interface {
	Resolve() (string, error)
}

// OSResolver resolves the real invoking user from the environment.
type OSResolver struct{}

// NewOSResolver creates a new OSResolver
func NewOSResolver() *OSResolver {
	return &OSResolver{}
}

// Resolve returns SUDO_USER when the process was elevated via sudo,
// otherwise the current process user.
func (r *OSResolver) Resolve() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		return sudoUser, nil
	}

	current, err := osuser.Current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}
	return current.Username, nil
}

// StaticResolver always resolves to a fixed username. Useful for testing.
type StaticResolver struct {
	Username string
	Err      error
}

// Resolve returns the configured username or error
func (r *StaticResolver) Resolve() (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Username, nil
}
