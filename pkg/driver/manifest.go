// Package driver implements the ambient CLI/build-time tooling around
// the interpreter core: the script package manifest and lockfile
// (spec.md's core is silent on these; SPEC_FULL.md §12.1-12.2 adds them
// as a pure CLI/packaging concern, not a language feature) and the
// REPL/file-mode run orchestration described in spec.md §6.4.
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed contents of an ember.yml script package
// descriptor (SPEC_FULL.md §12.1).
type Manifest struct {
	Path         string
	Name         string
	Entry        string
	Dependencies map[string]*Dependency
}

// Dependency names exactly one of a pinned git repository or a local
// path to another script package.
type Dependency struct {
	Git  string
	Rev  string
	Path string
}

type manifestFile struct {
	Name         string                 `yaml:"name"`
	Entry        string                 `yaml:"entry"`
	Dependencies map[string]*Dependency `yaml:"dependencies"`
}

// ValidationError aggregates every manifest problem found at once,
// rather than failing on the first.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// ErrManifestNotFound is returned by FindManifest when no ember.yml is
// reachable from the search directory upward.
var ErrManifestNotFound = errors.New("ember.yml not found")

// LoadManifest parses an ember.yml file from disk, returning a
// validated Manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := &Manifest{
		Path:         absPath,
		Name:         raw.Name,
		Entry:        raw.Entry,
		Dependencies: raw.Dependencies,
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if m.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must be provided")
	}
	for name, dep := range m.Dependencies {
		if dep == nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s must not be empty", name))
			continue
		}
		hasGit := dep.Git != ""
		hasPath := dep.Path != ""
		switch {
		case hasGit && hasPath:
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s: specify exactly one of git or path", name))
		case hasGit && dep.Rev == "":
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s: git dependency requires rev", name))
		case !hasGit && !hasPath:
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s: specify git+rev or path", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// EntryPath resolves Entry relative to the manifest's own directory.
func (m *Manifest) EntryPath() string {
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}

// FindManifest walks up from dir looking for ember.yml, the way the
// teacher's package.yml search works.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(dir, "ember.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrManifestNotFound
		}
		dir = parent
	}
}
