package filesystem

import (
	"io/fs"
	"sort"
	"strings"
)

// Call records a filesystem operation for verification
type Call struct {
	Op    string
	Path  string
	Owner string
}

// Mock is an in-memory Filesystem implementation for testing.
// It tracks files, directories and their assigned owners, records every
// call, and supports per-operation error injection.
type Mock struct {
	Files  map[string][]byte
	Dirs   map[string]bool
	Owners map[string]string
	Calls  []Call

	ReadErr   error
	WriteErr  error
	RemoveErr error
	MkdirErr  error
	TouchErr  error
	ChownErr  error
}

// NewMock creates an empty in-memory filesystem
func NewMock() *Mock {
	return &Mock{
		Files:  make(map[string][]byte),
		Dirs:   make(map[string]bool),
		Owners: make(map[string]string),
	}
}

func (m *Mock) record(op, path, owner string) {
	m.Calls = append(m.Calls, Call{Op: op, Path: path, Owner: owner})
}

// Exists reports whether path is a known file or directory
func (m *Mock) Exists(path string) bool {
	if _, ok := m.Files[path]; ok {
		return true
	}
	return m.Dirs[path]
}

// IsDir reports whether path is a known directory
func (m *Mock) IsDir(path string) bool {
	return m.Dirs[path]
}

// Remove deletes path and everything beneath it
func (m *Mock) Remove(path string) error {
	m.record("remove", path, "")
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	prefix := path + "/"
	for p := range m.Files {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.Files, p)
			delete(m.Owners, p)
		}
	}
	for p := range m.Dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.Dirs, p)
			delete(m.Owners, p)
		}
	}
	return nil
}

// EnsureDirExists creates the directory if absent
func (m *Mock) EnsureDirExists(path, owner string) error {
	m.record("ensuredir", path, owner)
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	if !m.Dirs[path] {
		m.Dirs[path] = true
		m.Owners[path] = owner
	}
	return nil
}

// MkdirAsUser creates a single directory
func (m *Mock) MkdirAsUser(path, owner string) error {
	m.record("mkdir", path, owner)
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	m.Dirs[path] = true
	m.Owners[path] = owner
	return nil
}

// ReadFile returns the stored contents of path
func (m *Mock) ReadFile(path string) ([]byte, error) {
	m.record("read", path, "")
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

// WriteFileAsUser stores data at path
func (m *Mock) WriteFileAsUser(path string, data []byte, owner string) error {
	m.record("write", path, owner)
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Files[path] = append([]byte(nil), data...)
	m.Owners[path] = owner
	return nil
}

// Touch creates an empty file if path does not exist
func (m *Mock) Touch(path, owner string) error {
	m.record("touch", path, owner)
	if m.TouchErr != nil {
		return m.TouchErr
	}
	if _, ok := m.Files[path]; !ok {
		m.Files[path] = []byte{}
		m.Owners[path] = owner
	}
	return nil
}

// ChownRecursive assigns owner to path and everything beneath it
func (m *Mock) ChownRecursive(path, owner string) error {
	m.record("chown", path, owner)
	if m.ChownErr != nil {
		return m.ChownErr
	}
	prefix := path + "/"
	for p := range m.Files {
		if p == path || strings.HasPrefix(p, prefix) {
			m.Owners[p] = owner
		}
	}
	for p := range m.Dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			m.Owners[p] = owner
		}
	}
	return nil
}

// Paths returns all known files and directories, sorted, for assertions
func (m *Mock) Paths() []string {
	paths := make([]string, 0, len(m.Files)+len(m.Dirs))
	for p := range m.Files {
		paths = append(paths, p)
	}
	for p := range m.Dirs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
