package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ember/interpreter/pkg/diagnostics"
	"ember/interpreter/pkg/interpreter"
)

func TestRunSourceSuccessReturnsExitOK(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := diagnostics.New(&errOut)
	interp := interpreter.New(&out)

	code := RunSource(`print 1 + 2;`, interp, sink)

	if code != ExitOK {
		t.Fatalf("exit code = %d, want %d", code, ExitOK)
	}
	if out.String() != "3\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestRunSourceParseErrorReturnsExitStatic(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := diagnostics.New(&errOut)
	interp := interpreter.New(&out)

	code := RunSource(`print ;`, interp, sink)

	if code != ExitStatic {
		t.Fatalf("exit code = %d, want %d", code, ExitStatic)
	}
}

func TestRunSourceRuntimeErrorReturnsExitRuntime(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := diagnostics.New(&errOut)
	interp := interpreter.New(&out)

	code := RunSource(`print 1 + "a";`, interp, sink)

	if code != ExitRuntime {
		t.Fatalf("exit code = %d, want %d", code, ExitRuntime)
	}
	if !strings.Contains(errOut.String(), "Operands must be two numbers or two strings.") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestRunFileReadsAndRunsTheGivenPath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.ember")
	writeFile(t, path, `print "hello from a file";`)

	var out, errOut bytes.Buffer
	code := RunFile(path, &out, &errOut)

	if code != ExitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut.String())
	}
	if out.String() != "hello from a file\n" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestRunFileMissingPathFails(t *testing.T) {
	var out, errOut bytes.Buffer
	code := RunFile("/no/such/file.ember", &out, &errOut)
	if code == ExitOK {
		t.Fatalf("expected a non-zero exit code for a missing file")
	}
}

func TestREPLPersistsGlobalsAcrossLines(t *testing.T) {
	in := strings.NewReader("var x = 1;\nprint x + 1;\n")
	var out, errOut bytes.Buffer

	REPL(in, &out, &errOut)

	if !strings.Contains(out.String(), "2\n") {
		t.Fatalf("expected the second line to see the first line's binding, stdout = %q", out.String())
	}
}

func TestResolveEntryPrefersDirectFilePath(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "script.ember")
	writeFile(t, path, `print 1;`)

	got, err := ResolveEntry(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Fatalf("ResolveEntry = %q, want %q", got, path)
	}
}

func TestResolveEntryFallsBackToManifestEntry(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ember.yml"), "name: greeter\nentry: main.ember\n")
	writeFile(t, filepath.Join(root, "main.ember"), `print "hi";`)

	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	got, err := ResolveEntry("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(root, "main.ember")
	if got != want {
		t.Fatalf("ResolveEntry = %q, want %q", got, want)
	}
}

func TestResolveEntryUnknownNameErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ember.yml"), "name: greeter\nentry: main.ember\n")

	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	if _, err := ResolveEntry("not-a-real-package"); err == nil {
		t.Fatalf("expected an error for an unknown package name")
	}
}
