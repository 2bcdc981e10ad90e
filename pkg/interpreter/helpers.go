package interpreter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ember/interpreter/pkg/token"
	"ember/interpreter/pkg/runtime"
)

func paramNames(params []token.Token) []string {
	names := make([]string, len(params))
	for idx, p := range params {
		names[idx] = p.Lexeme
	}
	return names
}

func io_writeLine(w io.Writer, s string) {
	fmt.Fprintln(w, s)
}

// isTruthy implements spec.md §4.3.4: nil and false are falsy, every
// other value is truthy.
func isTruthy(v runtime.Value) bool {
	switch val := v.(type) {
	case runtime.NilValue:
		return false
	case runtime.BoolValue:
		return val.Val
	default:
		return true
	}
}

// isEqual implements spec.md §4.3.1's `==`/`!=` semantics: structural
// equality, nil==nil true, nil==anything-else false, different kinds
// always unequal.
func isEqual(a, b runtime.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case runtime.NilValue:
		return true
	case runtime.BoolValue:
		return av.Val == b.(runtime.BoolValue).Val
	case runtime.NumberValue:
		return av.Val == b.(runtime.NumberValue).Val
	case runtime.StringValue:
		return av.Val == b.(runtime.StringValue).Val
	default:
		// Functions/native functions compare by identity only.
		return a == b
	}
}

// stringify renders a runtime value for `print`, per spec.md §6.3.
func (i *Interpreter) stringify(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.NilValue:
		return "nil"
	case runtime.BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case runtime.NumberValue:
		return formatNumber(val.Val)
	case runtime.StringValue:
		return val.Val
	case *runtime.FunctionValue:
		return fmt.Sprintf("<fn %s>", val.Name)
	case *runtime.NativeFunctionValue:
		return fmt.Sprintf("<fn %s>", val.Name)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders an integral double without a trailing ".0" and
// a non-integral double in the host's shortest round-trip form
// (spec.md §6.3).
func formatNumber(f float64) string {
	if f == float64(int64(f)) && !strings.Contains(strconv.FormatFloat(f, 'f', -1, 64), "e") {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
