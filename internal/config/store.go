package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parka-dev/parka/internal/errors"
	"github.com/parka-dev/parka/internal/filesystem"
	"github.com/parka-dev/parka/internal/logger"
	"github.com/parka-dev/parka/internal/template"
	"github.com/parka-dev/parka/internal/user"
)

// configDir is the default config directory relative to the home directory
const configDir = ".config/parka"

// Names under the configuration root.
const (
	configFile       = "config.json"
	driversDir       = "Drivers"
	sitesDir         = "Sites"
	extensionsDir    = "Extensions"
	logDir           = "Log"
	certificatesDir  = "Certificates"
	errorLogFile     = "nginx-error.log"
	sampleDriverFile = "sample.conf"
)

// DefaultRoot returns the default configuration root path
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// Store manages the configuration document and the directory tree
// around it. All filesystem access goes through the injected Filesystem
// so created files end up owned by the resolved user.
type Store struct {
	files filesystem.Filesystem
	users user.Resolver
	root  string
}

// NewStore creates a Store rooted at root
func NewStore(files filesystem.Filesystem, users user.Resolver, root string) *Store {
	return &Store{files: files, users: users, root: root}
}

// Root returns the configuration root directory
func (s *Store) Root() string {
	return s.root
}

// ConfigPath returns the canonical path of the configuration document
func (s *Store) ConfigPath() string {
	return filepath.Join(s.root, configFile)
}

// Install bootstraps the configuration tree. It is idempotent: existing
// directories, drivers and a previously written document are left
// untouched, so re-running install never resets customized settings.
func (s *Store) Install() error {
	owner, err := s.users.Resolve()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to resolve owner", err)
	}

	if err := s.files.EnsureDirExists(s.root, owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to create configuration root", s.root, err)
	}

	if err := s.createDriversDirectory(owner); err != nil {
		return err
	}

	for _, dir := range []string{sitesDir, extensionsDir, certificatesDir} {
		path := filepath.Join(s.root, dir)
		if err := s.files.EnsureDirExists(path, owner); err != nil {
			return errors.WrapPath(errors.ErrCodeFilesystem, "failed to create directory", path, err)
		}
	}

	if err := s.createLogDirectory(owner); err != nil {
		return err
	}

	if err := s.writeBaseConfiguration(); err != nil {
		return err
	}

	// Operations above may have run elevated; hand the whole tree back
	// to the invoking user.
	if err := s.files.ChownRecursive(s.root, owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to assign ownership", s.root, err)
	}

	logger.DebugFields("configuration installed", map[string]interface{}{
		"root":  s.root,
		"owner": owner,
	})
	return nil
}

// Uninstall removes the entire configuration tree. No-op when the tree
// does not exist.
func (s *Store) Uninstall() error {
	if !s.files.Exists(s.root) {
		return nil
	}
	if err := s.files.Remove(s.root); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to remove configuration root", s.root, err)
	}
	return nil
}

// AddPath inserts path into the watched paths list and persists the
// document. By default the path is appended; with prepend it is inserted
// at the front. Duplicates collapse onto the first occurrence, so
// appending an existing path leaves the list unchanged while prepending
// an existing path moves it to the front.
func (s *Store) AddPath(path string, prepend bool) error {
	doc, err := s.read()
	if err != nil {
		return err
	}

	if prepend {
		doc.Paths = append([]string{path}, doc.Paths...)
	} else {
		doc.Paths = append(doc.Paths, path)
	}
	doc.Paths = unique(doc.Paths)

	logger.Debug("watching path %s (prepend=%v)", path, prepend)
	return s.write(doc)
}

// RemovePath removes every entry exactly equal to path, preserving the
// order of the remaining entries. The document is rewritten even when
// the path was not present.
func (s *Store) RemovePath(path string) error {
	doc, err := s.read()
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(doc.Paths))
	for _, p := range doc.Paths {
		if p != path {
			kept = append(kept, p)
		}
	}
	doc.Paths = kept

	return s.write(doc)
}

// Prune drops watched paths that are no longer directories. No-op when
// the document does not exist yet.
func (s *Store) Prune() error {
	if !s.files.Exists(s.ConfigPath()) {
		return nil
	}

	doc, err := s.read()
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(doc.Paths))
	for _, p := range doc.Paths {
		if s.files.IsDir(p) {
			kept = append(kept, p)
		} else {
			logger.Debug("pruning stale path %s", p)
		}
	}
	doc.Paths = kept

	return s.write(doc)
}

// Get returns the value for key, or fallback when the document does not
// exist or does not contain the key. A missing key is never an error.
func (s *Store) Get(key string, fallback interface{}) (interface{}, error) {
	if !s.files.Exists(s.ConfigPath()) {
		return fallback, nil
	}

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	if value, ok := doc.Get(key); ok {
		return value, nil
	}
	return fallback, nil
}

// Set assigns value to key, persists the document, and returns the
// updated document. Unlike install, Set requires the document to already
// exist and fails with ErrNotInitialized otherwise.
func (s *Store) Set(key string, value interface{}) (*Document, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	if err := doc.Set(key, value); err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidation, "invalid value", err)
	}

	if err := s.write(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseDomain qualifies site with the configured domain suffix. A site
// name that already carries the suffix is returned unchanged.
func (s *Store) ParseDomain(site string) (string, error) {
	value, err := s.Get("domain", DefaultDomain)
	if err != nil {
		return "", err
	}

	domain, _ := value.(string)
	if domain == "" {
		domain = DefaultDomain
	}

	if strings.HasSuffix(site, "."+domain) {
		return site, nil
	}
	return site + "." + domain, nil
}

// Paths returns the current watched paths list
func (s *Store) Paths() ([]string, error) {
	value, err := s.Get("paths", []string{})
	if err != nil {
		return nil, err
	}
	paths, ok := value.([]string)
	if !ok {
		return nil, errors.Malformed(s.ConfigPath(), fmt.Errorf("paths is not a list of strings"))
	}
	return paths, nil
}

// createDriversDirectory creates Drivers/ seeded with the sample driver.
// An existing Drivers directory and its contents are left untouched.
func (s *Store) createDriversDirectory(owner string) error {
	path := filepath.Join(s.root, driversDir)
	if s.files.Exists(path) {
		return nil
	}

	if err := s.files.MkdirAsUser(path, owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to create drivers directory", path, err)
	}

	domain, err := s.Get("domain", DefaultDomain)
	if err != nil {
		return err
	}
	port, err := s.Get("port", DefaultPort)
	if err != nil {
		return err
	}

	sample, err := template.RenderSampleDriver(fmt.Sprint(domain), fmt.Sprint(port))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to render sample driver", err)
	}

	samplePath := filepath.Join(path, sampleDriverFile)
	if err := s.files.WriteFileAsUser(samplePath, []byte(sample), owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to seed sample driver", samplePath, err)
	}
	return nil
}

// createLogDirectory creates Log/ with a touched error log
func (s *Store) createLogDirectory(owner string) error {
	path := filepath.Join(s.root, logDir)
	if err := s.files.EnsureDirExists(path, owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to create log directory", path, err)
	}

	logPath := filepath.Join(path, errorLogFile)
	if err := s.files.Touch(logPath, owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to create error log", logPath, err)
	}
	return nil
}

// writeBaseConfiguration writes the default document unless one already
// exists. Skipping the write preserves user settings across re-installs.
func (s *Store) writeBaseConfiguration() error {
	if s.files.Exists(s.ConfigPath()) {
		return nil
	}
	return s.write(NewDocument())
}

// read loads and decodes the configuration document
func (s *Store) read() (*Document, error) {
	path := s.ConfigPath()
	if !s.files.Exists(path) {
		return nil, errors.NotInitialized(path)
	}

	data, err := s.files.ReadFile(path)
	if err != nil {
		return nil, errors.WrapPath(errors.ErrCodeFilesystem, "failed to read configuration", path, err)
	}

	doc := new(Document)
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Malformed(path, err)
	}
	return doc, nil
}

// write serializes the document as pretty-printed JSON with a trailing
// newline and writes it through the ownership-aware primitive.
func (s *Store) write(doc *Document) error {
	owner, err := s.users.Resolve()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to resolve owner", err)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to encode configuration", err)
	}

	path := s.ConfigPath()
	if err := s.files.WriteFileAsUser(path, buf.Bytes(), owner); err != nil {
		return errors.WrapPath(errors.ErrCodeFilesystem, "failed to write configuration", path, err)
	}
	return nil
}
