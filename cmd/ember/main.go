// Command ember is the CLI driver described in spec.md §6.4 and
// expanded in SPEC_FULL.md §12.3: file-mode execution, a REPL, and the
// manifest/lockfile packaging subcommands.
package main

import (
	"errors"
	"fmt"
	"os"

	"ember/interpreter/pkg/driver"
)

const cliToolVersion = "ember-cli 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return driver.REPL(os.Stdin, os.Stdout, os.Stderr)
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "ember run: expected at most one argument (a file path or package name)")
		return 1
	}

	candidate := ""
	if len(args) == 1 {
		candidate = args[0]
	}

	entry, err := driver.ResolveEntry(candidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember: %v\n", err)
		return 1
	}

	return driver.RunFile(entry, os.Stdout, os.Stderr)
}

func runDeps(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "ember deps takes no arguments (received %q)\n", args[0])
		return 1
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to determine working directory: %v\n", err)
		return 1
	}
	manifestPath, err := driver.FindManifest(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember deps: %v\n", err)
		return 1
	}
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember deps: %v\n", err)
		return 1
	}

	cacheDir, err := driver.DependencyCacheDir(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ember deps: %v\n", err)
		return 1
	}

	lockPath := driver.LockfilePath(manifest)
	lock, err := driver.LoadLockfile(lockPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "ember deps: %v\n", err)
			return 1
		}
		lock = driver.NewLockfile(manifest.Name)
	}

	fmt.Fprintf(os.Stdout, "Manifest: %s\n", manifest.Path)
	fmt.Fprintf(os.Stdout, "Package: %s\n", manifest.Name)
	fmt.Fprintf(os.Stdout, "Dependencies: %d\n", len(manifest.Dependencies))
	fmt.Fprintf(os.Stdout, "Cache directory: %s\n", cacheDir)

	if err := driver.InstallDependencies(manifest, lock, cacheDir); err != nil {
		fmt.Fprintf(os.Stderr, "ember deps: %v\n", err)
		return 1
	}
	if err := driver.WriteLockfile(lock, lockPath); err != nil {
		fmt.Fprintf(os.Stderr, "ember deps: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stdout, "Wrote %s\n", lockPath)
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  ember                 start a REPL")
	fmt.Fprintln(os.Stderr, "  ember run <file>      run a source file")
	fmt.Fprintln(os.Stderr, "  ember run <package>   run the entry of the named ember.yml package")
	fmt.Fprintln(os.Stderr, "  ember <file>          shorthand for `ember run <file>`")
	fmt.Fprintln(os.Stderr, "  ember deps            install git dependencies declared in ember.yml")
	fmt.Fprintln(os.Stderr, "  ember --version       print the CLI version")
}
