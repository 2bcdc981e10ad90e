package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Lockfile pins every declared git dependency to the commit that was
// actually fetched (SPEC_FULL.md §12.2), the way the teacher's
// package.lock pins resolved versions.
type Lockfile struct {
	Package  string            `yaml:"package"`
	Resolved map[string]string `yaml:"resolved"`
}

// NewLockfile returns an empty lockfile for the named package.
func NewLockfile(pkgName string) *Lockfile {
	return &Lockfile{Package: pkgName, Resolved: make(map[string]string)}
}

// LoadLockfile reads an ember.lock file from disk.
func LoadLockfile(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lockfile: read %s: %w", path, err)
	}
	var lock Lockfile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("lockfile: parse %s: %w", path, err)
	}
	if lock.Resolved == nil {
		lock.Resolved = make(map[string]string)
	}
	return &lock, nil
}

// WriteLockfile serializes lock to path.
func WriteLockfile(lock *Lockfile, path string) error {
	data, err := yaml.Marshal(lock)
	if err != nil {
		return fmt.Errorf("lockfile: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("lockfile: mkdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("lockfile: write %s: %w", path, err)
	}
	return nil
}

// LockfilePath returns the conventional lockfile path beside manifest.
func LockfilePath(manifest *Manifest) string {
	return filepath.Join(filepath.Dir(manifest.Path), "ember.lock")
}
