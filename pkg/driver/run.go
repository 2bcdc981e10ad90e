package driver

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"ember/interpreter/pkg/diagnostics"
	"ember/interpreter/pkg/interpreter"
	"ember/interpreter/pkg/lexer"
	"ember/interpreter/pkg/parser"
	"ember/interpreter/pkg/resolver"
)

// Exit codes mirror spec.md §7: a static (parse/resolve) error is 65,
// a runtime error is 70, success is 0.
const (
	ExitOK      = 0
	ExitStatic  = 65
	ExitRuntime = 70
)

// RunSource lexes, parses, resolves, and interprets one complete
// program against interp, reporting diagnostics through sink. It
// returns the process exit code that should follow.
func RunSource(source string, interp *interpreter.Interpreter, sink *diagnostics.Sink) int {
	lx := lexer.New(source, sink)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, sink)
	program := p.Parse()
	if sink.HadError() {
		return ExitStatic
	}

	res := resolver.New(sink)
	res.Resolve(program)
	if sink.HadError() {
		return ExitStatic
	}

	if err := interp.Interpret(program, res.Depths); err != nil {
		if rerr, ok := err.(*interpreter.RuntimeError); ok {
			sink.ReportRuntime(rerr.Line, rerr.Message)
		} else {
			sink.ReportRuntime(0, err.Error())
		}
		return ExitRuntime
	}

	return ExitOK
}

// RunFile reads path and runs it as a complete program, per SPEC_FULL.md
// §12.3's file mode.
func RunFile(path string, stdout io.Writer, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "ember: %v\n", err)
		return 1
	}
	sink := diagnostics.New(stderr)
	interp := interpreter.New(stdout)
	return RunSource(string(data), interp, sink)
}

// ResolveEntry turns `ember run <candidate>` into a concrete source
// file path. If candidate names an existing file directly, it is used
// as-is. Otherwise an ember.yml is searched for starting at the
// current directory, and candidate is matched against the manifest's
// package Name; an empty candidate selects the manifest's own Entry
// (SPEC_FULL.md §12.1), the way the teacher's `able run` resolves a bare
// package name against package.yml targets.
func ResolveEntry(candidate string) (string, error) {
	if candidate != "" {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	manifestPath, err := FindManifest(cwd)
	if err != nil {
		if candidate == "" {
			return "", err
		}
		return "", fmt.Errorf("%s: no such file, and no ember.yml found: %w", candidate, err)
	}
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return "", err
	}
	if candidate != "" && candidate != manifest.Name {
		return "", fmt.Errorf("no source file or package named %q", candidate)
	}
	return manifest.EntryPath(), nil
}

// REPL runs an interactive read-eval-print loop over in, writing
// results to out/errOut, per SPEC_FULL.md §12.3: the same interpreter (and
// so the same global frame) persists across lines, and each line is
// parsed/resolved/evaluated as its own one-statement program. A line
// that fails to parse or hits a runtime error reports the diagnostic
// and the loop continues rather than exiting.
func REPL(in io.Reader, out io.Writer, errOut io.Writer) int {
	sink := diagnostics.New(errOut)
	interp := interpreter.New(out)

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		sink.Reset()
		RunSource(line, interp, sink)
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return ExitOK
}
