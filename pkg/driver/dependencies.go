package driver

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// InstallDependencies clones (or reuses) every git dependency declared
// in manifest into cacheDir, checks out its pinned revision, and
// records the resolved commit hash into lock. Path dependencies are
// left alone: they already live on the local filesystem.
//
// This mirrors the teacher's dependency-installer test fixtures in
// cmd/able/main_test.go (TestDependencyInstaller_PathDependency),
// adapted from Able's multi-target package model to Ember's simpler
// single-entry script package.
func InstallDependencies(manifest *Manifest, lock *Lockfile, cacheDir string) error {
	for name, dep := range manifest.Dependencies {
		if dep.Path != "" {
			continue
		}
		hash, err := installGitDependency(name, dep, cacheDir)
		if err != nil {
			return fmt.Errorf("install dependency %s: %w", name, err)
		}
		lock.Resolved[name] = hash
	}
	return nil
}

func installGitDependency(name string, dep *Dependency, cacheDir string) (string, error) {
	target := filepath.Join(cacheDir, name)

	repo, err := openOrClone(target, dep.Git)
	if err != nil {
		return "", err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(dep.Rev))
	if err != nil {
		return "", fmt.Errorf("resolve rev %q: %w", dep.Rev, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("worktree: %w", err)
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
		return "", fmt.Errorf("checkout %s: %w", hash.String(), err)
	}

	return hash.String(), nil
}

func openOrClone(dir, url string) (*git.Repository, error) {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		repo, err := git.PlainOpen(dir)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", dir, err)
		}
		if fetchErr := repo.Fetch(&git.FetchOptions{}); fetchErr != nil && fetchErr != git.NoErrAlreadyUpToDate {
			return nil, fmt.Errorf("fetch %s: %w", dir, fetchErr)
		}
		return repo, nil
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	repo, err := git.PlainClone(dir, false, &git.CloneOptions{URL: url})
	if err != nil {
		return nil, fmt.Errorf("clone %s: %w", url, err)
	}
	return repo, nil
}

// DependencyCacheDir returns the directory git dependencies are cloned
// into for a given manifest, rooted under the host's EMBER_HOME (or
// ~/.ember when unset).
func DependencyCacheDir(manifest *Manifest) (string, error) {
	home, err := EmberHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "packages", manifest.Name), nil
}

// EmberHome resolves the cache root: $EMBER_HOME, or ~/.ember.
func EmberHome() (string, error) {
	if v := os.Getenv("EMBER_HOME"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ember"), nil
}
