package driver

import (
	"path/filepath"
	"testing"
)

func TestNewLockfileStartsEmpty(t *testing.T) {
	lock := NewLockfile("greeter")
	if lock.Package != "greeter" {
		t.Fatalf("unexpected package name: %q", lock.Package)
	}
	if len(lock.Resolved) != 0 {
		t.Fatalf("expected empty Resolved map, got %v", lock.Resolved)
	}
}

func TestWriteThenLoadLockfileRoundTrips(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ember.lock")

	lock := NewLockfile("greeter")
	lock.Resolved["strings"] = "a1b2c3d"

	if err := WriteLockfile(lock, path); err != nil {
		t.Fatalf("WriteLockfile: %v", err)
	}

	loaded, err := LoadLockfile(path)
	if err != nil {
		t.Fatalf("LoadLockfile: %v", err)
	}
	if loaded.Package != "greeter" || loaded.Resolved["strings"] != "a1b2c3d" {
		t.Fatalf("unexpected round-tripped lockfile: %+v", loaded)
	}
}

func TestLoadLockfileMissingFileErrors(t *testing.T) {
	root := t.TempDir()
	if _, err := LoadLockfile(filepath.Join(root, "ember.lock")); err == nil {
		t.Fatalf("expected an error for a missing lockfile")
	}
}

func TestLockfilePathIsBesideManifest(t *testing.T) {
	manifest := &Manifest{Path: "/project/ember.yml"}
	got := LockfilePath(manifest)
	want := filepath.Join("/project", "ember.lock")
	if got != want {
		t.Fatalf("LockfilePath = %q, want %q", got, want)
	}
}
