package filesystem

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"
)

// currentUsername returns the test process user, so chown calls resolve to
// the user the files already belong to.
func currentUsername(t *testing.T) string {
	t.Helper()
	u, err := user.Current()
	if err != nil {
		t.Fatalf("failed to resolve current user: %v", err)
	}
	return u.Username
}

func TestOSFilesystem(t *testing.T) {
	fs := NewOSFilesystem()
	owner := currentUsername(t)
	base := t.TempDir()

	t.Run("ExistsAndIsDir", func(t *testing.T) {
		if !fs.Exists(base) {
			t.Error("temp dir should exist")
		}
		if !fs.IsDir(base) {
			t.Error("temp dir should be a directory")
		}
		if fs.Exists(filepath.Join(base, "missing")) {
			t.Error("missing path should not exist")
		}
	})

	t.Run("EnsureDirExists", func(t *testing.T) {
		dir := filepath.Join(base, "a", "b", "c")
		if err := fs.EnsureDirExists(dir, owner); err != nil {
			t.Fatalf("EnsureDirExists failed: %v", err)
		}
		if !fs.IsDir(dir) {
			t.Error("nested directory was not created")
		}

		// Second call on existing directory is a no-op
		if err := fs.EnsureDirExists(dir, owner); err != nil {
			t.Errorf("EnsureDirExists on existing dir failed: %v", err)
		}
	})

	t.Run("MkdirAsUser", func(t *testing.T) {
		dir := filepath.Join(base, "single")
		if err := fs.MkdirAsUser(dir, owner); err != nil {
			t.Fatalf("MkdirAsUser failed: %v", err)
		}
		if !fs.IsDir(dir) {
			t.Error("directory was not created")
		}

		// Creating it again fails (plain mkdir semantics)
		if err := fs.MkdirAsUser(dir, owner); err == nil {
			t.Error("expected error creating existing directory")
		}
	})

	t.Run("WriteAndRead", func(t *testing.T) {
		path := filepath.Join(base, "file.json")
		content := []byte("{\"domain\": \"test\"}\n")

		if err := fs.WriteFileAsUser(path, content, owner); err != nil {
			t.Fatalf("WriteFileAsUser failed: %v", err)
		}

		data, err := fs.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != string(content) {
			t.Errorf("read %q, want %q", data, content)
		}

		if fs.IsDir(path) {
			t.Error("file should not report as directory")
		}
	})

	t.Run("Touch", func(t *testing.T) {
		path := filepath.Join(base, "touched.log")
		if err := fs.Touch(path, owner); err != nil {
			t.Fatalf("Touch failed: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("touched file missing: %v", err)
		}
		if info.Size() != 0 {
			t.Errorf("touched file should be empty, got %d bytes", info.Size())
		}

		// Touch must not truncate an existing file
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := fs.Touch(path, owner); err != nil {
			t.Fatalf("Touch on existing file failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "content" {
			t.Errorf("Touch truncated existing file, got %q", data)
		}
	})

	t.Run("ChownRecursive", func(t *testing.T) {
		dir := filepath.Join(base, "tree", "leaf")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		// Chown to the current user is a no-op permission-wise and must succeed
		if err := fs.ChownRecursive(filepath.Join(base, "tree"), owner); err != nil {
			t.Errorf("ChownRecursive failed: %v", err)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		dir := filepath.Join(base, "removeme")
		if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := fs.Remove(dir); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if fs.Exists(dir) {
			t.Error("directory should be gone")
		}

		// Removing a missing path is not an error
		if err := fs.Remove(dir); err != nil {
			t.Errorf("Remove of missing path failed: %v", err)
		}
	})

	t.Run("UnknownOwner", func(t *testing.T) {
		path := filepath.Join(base, "unowned")
		err := fs.WriteFileAsUser(path, []byte("x"), "no-such-user-zzz")
		if err == nil {
			t.Error("expected error for unknown owner")
		}
	})
}

func TestMock(t *testing.T) {
	t.Run("WriteReadRemove", func(t *testing.T) {
		m := NewMock()
		if err := m.WriteFileAsUser("/root/config.json", []byte("{}"), "dev"); err != nil {
			t.Fatal(err)
		}
		if !m.Exists("/root/config.json") {
			t.Error("file should exist")
		}
		if m.Owners["/root/config.json"] != "dev" {
			t.Errorf("owner not recorded: %v", m.Owners)
		}

		data, err := m.ReadFile("/root/config.json")
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "{}" {
			t.Errorf("read %q", data)
		}

		if err := m.Remove("/root"); err != nil {
			t.Fatal(err)
		}
		if m.Exists("/root/config.json") {
			t.Error("recursive remove should delete nested files")
		}
	})

	t.Run("ReadMissing", func(t *testing.T) {
		m := NewMock()
		if _, err := m.ReadFile("/nope"); err == nil {
			t.Error("expected error reading missing file")
		}
	})

	t.Run("TouchKeepsContents", func(t *testing.T) {
		m := NewMock()
		m.Files["/log"] = []byte("existing")
		if err := m.Touch("/log", "dev"); err != nil {
			t.Fatal(err)
		}
		if string(m.Files["/log"]) != "existing" {
			t.Error("touch should not truncate")
		}
	})

	t.Run("ChownRecursive", func(t *testing.T) {
		m := NewMock()
		m.Dirs["/root"] = true
		m.Dirs["/root/Sites"] = true
		m.Files["/root/config.json"] = []byte("{}")
		if err := m.ChownRecursive("/root", "dev"); err != nil {
			t.Fatal(err)
		}
		for _, p := range []string{"/root", "/root/Sites", "/root/config.json"} {
			if m.Owners[p] != "dev" {
				t.Errorf("%s owner = %q, want dev", p, m.Owners[p])
			}
		}
	})

	t.Run("RecordsCalls", func(t *testing.T) {
		m := NewMock()
		_ = m.EnsureDirExists("/root", "dev")
		_ = m.Touch("/root/log", "dev")
		if len(m.Calls) != 2 {
			t.Fatalf("expected 2 recorded calls, got %d", len(m.Calls))
		}
		if m.Calls[0].Op != "ensuredir" || m.Calls[1].Op != "touch" {
			t.Errorf("unexpected ops: %+v", m.Calls)
		}
	})
}
