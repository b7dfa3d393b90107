package cli

import (
	"bufio"
	"os"

	"github.com/parka-dev/parka/internal/config"
	"github.com/parka-dev/parka/internal/filesystem"
	"github.com/parka-dev/parka/internal/user"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	Stores StoreProvider
	Stdin  StdinReader
}

// ConfigStore is the configuration store surface the commands use
type ConfigStore interface {
	Install() error
	Uninstall() error
	AddPath(path string, prepend bool) error
	RemovePath(path string) error
	Prune() error
	Get(key string, fallback interface{}) (interface{}, error)
	Set(key string, value interface{}) (*config.Document, error)
	ParseDomain(site string) (string, error)
	Paths() ([]string, error)
	Root() string
}

// StoreProvider opens the configuration store
type StoreProvider interface {
	Store() (ConfigStore, error)
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	Stores: &realStoreProvider{},
	Stdin:  &realStdinReader{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations

type realStoreProvider struct {
	store ConfigStore
}

func (p *realStoreProvider) Store() (ConfigStore, error) {
	if p.store == nil {
		root, err := config.DefaultRoot()
		if err != nil {
			return nil, err
		}
		p.store = config.NewStore(filesystem.NewOSFilesystem(), user.NewOSResolver(), root)
	}
	return p.store, nil
}

type realStdinReader struct {
	reader *bufio.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(os.Stdin)
	}
	return r.reader.ReadString(delim)
}
