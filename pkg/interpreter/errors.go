package interpreter

import (
	"fmt"

	"ember/interpreter/pkg/runtime"
)

// RuntimeError is a genuine runtime fault (spec.md §4.3.5, §7 item 3):
// type mismatches, arity mismatches, calling a non-callable, undefined
// variable access/assignment. It carries the offending line so the
// driver can report it through the diagnostic sink.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

func newRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// breakSignal and returnSignal are non-local control-flow exits, not
// errors (spec.md §7: "Control-flow signals ... are NOT errors and
// must not be surfaced through the error sink."). They implement the
// error interface purely so they can travel through Go's ordinary
// (value, error) evaluator returns and be type-switched out by the
// nearest enclosing loop or call, mirroring the teacher's
// breakSignal/returnSignal pattern in pkg/interpreter/interpreter.go.
type breakSignal struct{}

func (breakSignal) Error() string { return "break" }

type returnSignal struct {
	value runtime.Value
}

func (returnSignal) Error() string { return "return" }
