// Package filesystem provides the filesystem operations the configuration
// store depends on, with ownership assignment built into every create and
// write primitive.
//
// parka may run with elevated privileges (for example under sudo) while the
// configuration tree must stay owned by the real invoking user. Every
// operation that creates or writes therefore takes an owner username and
// reassigns ownership after the operation, including after failed writes
// that may have left partial content behind.
//
// The Filesystem interface allows the configuration store to be tested
// against the in-memory Mock implementation.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// Filesystem is the interface consumed by the configuration store.
type Filesystem interface {
	// Exists reports whether path exists (file or directory)
	Exists(path string) bool

	// IsDir reports whether path exists and is a directory
	IsDir(path string) bool

	// Remove deletes path and, for directories, everything beneath it
	Remove(path string) error

	// EnsureDirExists creates the directory (and parents) if absent and
	// assigns ownership to owner
	EnsureDirExists(path, owner string) error

	// MkdirAsUser creates a single directory owned by owner
	MkdirAsUser(path, owner string) error

	// ReadFile returns the contents of path
	ReadFile(path string) ([]byte, error)

	// WriteFileAsUser writes data to path and assigns ownership to owner
	WriteFileAsUser(path string, data []byte, owner string) error

	// Touch creates an empty file owned by owner if path does not exist
	Touch(path, owner string) error

	// ChownRecursive assigns ownership of path and everything beneath it
	// to owner
	ChownRecursive(path, owner string) error
}

// OSFilesystem implements Filesystem using the real operating system.
type OSFilesystem struct{}

// NewOSFilesystem creates a new OSFilesystem
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// Exists reports whether path exists
func (f *OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory
func (f *OSFilesystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Remove deletes path recursively
func (f *OSFilesystem) Remove(path string) error {
	return os.RemoveAll(path)
}

// EnsureDirExists creates path (and parents) if absent, owned by owner
func (f *OSFilesystem) EnsureDirExists(path, owner string) error {
	if f.IsDir(path) {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return f.chown(path, owner)
}

// MkdirAsUser creates a single directory owned by owner
func (f *OSFilesystem) MkdirAsUser(path, owner string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return f.chown(path, owner)
}

// ReadFile returns the contents of path
func (f *OSFilesystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAsUser writes data to path owned by owner.
// Ownership is reassigned even when the write fails, since a failed write
// may still have created or truncated the file.
func (f *OSFilesystem) WriteFileAsUser(path string, data []byte, owner string) error {
	writeErr := os.WriteFile(path, data, 0o644)

	if _, statErr := os.Lstat(path); statErr == nil {
		if chownErr := f.chown(path, owner); chownErr != nil && writeErr == nil {
			writeErr = chownErr
		}
	}

	return writeErr
}

// Touch creates an empty file owned by owner if path does not exist.
// An existing file is left untouched.
func (f *OSFilesystem) Touch(path, owner string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to touch %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	return f.chown(path, owner)
}

// ChownRecursive assigns ownership of path and everything beneath it to owner
func (f *OSFilesystem) ChownRecursive(path, owner string) error {
	uid, gid, err := lookupIDs(owner)
	if err != nil {
		return err
	}

	return filepath.WalkDir(path, func(p string, _ fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		// Lchown so symlinked entries don't redirect the chown elsewhere
		if err := os.Lchown(p, uid, gid); err != nil {
			return fmt.Errorf("failed to change owner of %s: %w", p, err)
		}
		return nil
	})
}

// chown assigns ownership of a single path to owner
func (f *OSFilesystem) chown(path, owner string) error {
	uid, gid, err := lookupIDs(owner)
	if err != nil {
		return err
	}
	if err := os.Lchown(path, uid, gid); err != nil {
		return fmt.Errorf("failed to change owner of %s: %w", path, err)
	}
	return nil
}

// lookupIDs resolves a username to numeric uid/gid
func lookupIDs(owner string) (int, int, error) {
	u, err := user.Lookup(owner)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to look up user %s: %w", owner, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid uid %q for user %s: %w", u.Uid, owner, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid gid %q for user %s: %w", u.Gid, owner, err)
	}
	return uid, gid, nil
}
