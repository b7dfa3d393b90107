package cli

import (
	"reflect"
	"testing"
)

func TestRunPaths(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		setupInstalled(t, "")

		if err := runPaths(pathsCmd, nil); err != nil {
			t.Errorf("runPaths failed: %v", err)
		}
	})

	t.Run("lists parked paths", func(t *testing.T) {
		store, _ := setupInstalled(t, "")
		_ = store.AddPath("/a", false)
		_ = store.AddPath("/b", false)

		if err := runPaths(pathsCmd, nil); err != nil {
			t.Errorf("runPaths failed: %v", err)
		}
	})

	t.Run("json output", func(t *testing.T) {
		store, _ := setupInstalled(t, "")
		_ = store.AddPath("/a", false)
		jsonOutput = true

		if err := runPaths(pathsCmd, nil); err != nil {
			t.Errorf("runPaths --json failed: %v", err)
		}
	})

	t.Run("yaml output", func(t *testing.T) {
		store, _ := setupInstalled(t, "")
		_ = store.AddPath("/a", false)
		yamlOutput = true

		if err := runPaths(pathsCmd, nil); err != nil {
			t.Errorf("runPaths --yaml failed: %v", err)
		}
	})

	t.Run("works without document", func(t *testing.T) {
		setupDeps(t, "")

		// Get falls back to an empty list when parka is not installed
		if err := runPaths(pathsCmd, nil); err != nil {
			t.Errorf("runPaths without document failed: %v", err)
		}
	})
}

func TestRunPrune(t *testing.T) {
	t.Run("drops stale entries", func(t *testing.T) {
		store, files := setupInstalled(t, "")
		files.Dirs["/exists"] = true
		_ = store.AddPath("/exists", false)
		_ = store.AddPath("/missing", false)

		if err := runPrune(pruneCmd, nil); err != nil {
			t.Fatalf("runPrune failed: %v", err)
		}
		if got := storedPaths(t, store); !reflect.DeepEqual(got, []string{"/exists"}) {
			t.Errorf("paths = %v, want [/exists]", got)
		}
	})

	t.Run("no-op without document", func(t *testing.T) {
		setupDeps(t, "")

		if err := runPrune(pruneCmd, nil); err != nil {
			t.Errorf("runPrune without document failed: %v", err)
		}
	})
}
