// Package interpreter evaluates a resolved AST against an Environment
// chain, per spec.md §4.3.
package interpreter

import (
	"io"
	"os"

	"ember/interpreter/pkg/ast"
	"ember/interpreter/pkg/resolver"
	"ember/interpreter/pkg/runtime"
)

// Interpreter holds the fixed global frame, the current depth-map
// produced by the resolver, and the sink print writes to.
type Interpreter struct {
	global *runtime.Environment
	depths resolver.DepthMap
	stdout io.Writer
}

// New returns an Interpreter with an empty global frame (spec.md §4.3
// defines no built-ins beyond the print statement form) writing print
// output to w (os.Stdout when nil).
func New(w io.Writer) *Interpreter {
	if w == nil {
		w = os.Stdout
	}
	return &Interpreter{
		global: runtime.NewEnvironment(nil),
		depths: make(resolver.DepthMap),
		stdout: w,
	}
}

// Global exposes the persistent global frame, so a REPL driver can
// retain bindings across lines.
func (i *Interpreter) Global() *runtime.Environment {
	return i.global
}

// DefineNative installs a host-provided native function in the global
// frame. Unused by the core language (spec.md §4.3 defines no built-ins
// beyond print) but available for embedding.
func (i *Interpreter) DefineNative(name string, arity int, fn func(args []runtime.Value) (runtime.Value, error)) {
	i.global.Define(name, &runtime.NativeFunctionValue{Name: name, Arty: arity, Fn: fn})
}

// Interpret executes program's statements against the global frame
// using depths as the resolver's depth-map. It returns the first
// error encountered: a *RuntimeError, or the error a native function
// returned, passed through as is; control-flow signals never escape this
// call. A `return` that reaches top level (no enclosing function call)
// simply halts remaining top-level evaluation, treating the script as
// finished rather than as an error — spec.md does not define top-level
// return's behavior, and this choice (documented in DESIGN.md) avoids
// surfacing a non-error signal through the error sink.
func (i *Interpreter) Interpret(program []ast.Stmt, depths resolver.DepthMap) error {
	i.depths = depths
	for _, stmt := range program {
		_, err := i.executeStmt(stmt, i.global)
		if err == nil {
			continue
		}
		if _, ok := err.(returnSignal); ok {
			return nil
		}
		if _, ok := err.(breakSignal); ok {
			return nil
		}
		return err
	}
	return nil
}
