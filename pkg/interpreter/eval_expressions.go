package interpreter

import (
	"ember/interpreter/pkg/ast"
	"ember/interpreter/pkg/runtime"
)

func (i *Interpreter) evaluateExpr(expr ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil
	case *ast.Grouping:
		return i.evaluateExpr(e.Inner, env)
	case *ast.Unary:
		return i.evaluateUnary(e, env)
	case *ast.Binary:
		return i.evaluateBinary(e, env)
	case *ast.Logical:
		return i.evaluateLogical(e, env)
	case *ast.Ternary:
		return i.evaluateTernary(e, env)
	case *ast.Variable:
		return i.lookUpVariable(e.ID, e.Name.Lexeme, e.Name.Line, env)
	case *ast.Assign:
		return i.evaluateAssign(e, env)
	case *ast.Call:
		return i.evaluateCall(e, env)
	case *ast.Function:
		return &runtime.FunctionValue{Params: paramNames(e.Params), Body: e.Body, Closure: env}, nil
	default:
		return nil, newRuntimeError(0, "interpreter: unhandled expression type %T", expr)
	}
}

func literalValue(v any) runtime.Value {
	switch val := v.(type) {
	case nil:
		return runtime.NilValue{}
	case bool:
		return runtime.BoolValue{Val: val}
	case float64:
		return runtime.NumberValue{Val: val}
	case string:
		return runtime.StringValue{Val: val}
	default:
		return runtime.NilValue{}
	}
}

func (i *Interpreter) evaluateUnary(e *ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	right, err := i.evaluateExpr(e.Right, env)
	if err != nil {
		return nil, err
	}
	switch e.Op.Lexeme {
	case "-":
		num, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, newRuntimeError(e.Op.Line, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case "!":
		return runtime.BoolValue{Val: !isTruthy(right)}, nil
	default:
		return nil, newRuntimeError(e.Op.Line, "Unknown unary operator %q.", e.Op.Lexeme)
	}
}

func (i *Interpreter) evaluateBinary(e *ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op.Lexeme {
	case "+":
		if ln, ok := left.(runtime.NumberValue); ok {
			if rn, ok := right.(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
			}
		}
		if ls, ok := left.(runtime.StringValue); ok {
			if rs, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: ls.Val + rs.Val}, nil
			}
		}
		return nil, newRuntimeError(e.Op.Line, "Operands must be two numbers or two strings.")
	case "-", "*", "/":
		ln, lok := left.(runtime.NumberValue)
		rn, rok := right.(runtime.NumberValue)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op.Line, "Operands must be numbers.")
		}
		switch e.Op.Lexeme {
		case "-":
			return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
		case "*":
			return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
		default: // "/"
			return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
		}
	case "<", "<=", ">", ">=":
		ln, lok := left.(runtime.NumberValue)
		rn, rok := right.(runtime.NumberValue)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op.Line, "Operands must be numbers.")
		}
		switch e.Op.Lexeme {
		case "<":
			return runtime.BoolValue{Val: ln.Val < rn.Val}, nil
		case "<=":
			return runtime.BoolValue{Val: ln.Val <= rn.Val}, nil
		case ">":
			return runtime.BoolValue{Val: ln.Val > rn.Val}, nil
		default: // ">="
			return runtime.BoolValue{Val: ln.Val >= rn.Val}, nil
		}
	case "==":
		return runtime.BoolValue{Val: isEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !isEqual(left, right)}, nil
	default:
		return nil, newRuntimeError(e.Op.Line, "Unknown binary operator %q.", e.Op.Lexeme)
	}
}

// evaluateLogical implements short-circuiting (spec.md §4.3.1): the
// returned value is the operand itself, not necessarily a boolean.
func (i *Interpreter) evaluateLogical(e *ast.Logical, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	if e.Op.Lexeme == "or" {
		if isTruthy(left) {
			return left, nil
		}
		return i.evaluateExpr(e.Right, env)
	}
	// "and"
	if !isTruthy(left) {
		return left, nil
	}
	return i.evaluateExpr(e.Right, env)
}

func (i *Interpreter) evaluateTernary(e *ast.Ternary, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpr(e.Cond, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return i.evaluateExpr(e.IfTrue, env)
	}
	return i.evaluateExpr(e.IfFalse, env)
}

// lookUpVariable implements spec.md §4.3.1's Variable evaluation: a
// resolver-qualified depth hits the environment chain directly; an
// unresolved name (global) falls through to dynamic lookup on the
// fixed global frame.
func (i *Interpreter) lookUpVariable(nodeID int, name string, line int, env *runtime.Environment) (runtime.Value, error) {
	if depth, ok := i.depths[nodeID]; ok {
		v, err := env.GetAt(depth, name)
		if err != nil {
			return nil, newRuntimeError(line, "%s", err.Error())
		}
		return v, nil
	}
	v, err := i.global.Get(name)
	if err != nil {
		return nil, newRuntimeError(line, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) evaluateAssign(e *ast.Assign, env *runtime.Environment) (runtime.Value, error) {
	value, err := i.evaluateExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.depths[e.ID]; ok {
		if err := env.AssignAt(depth, e.Name.Lexeme, value); err != nil {
			return nil, newRuntimeError(e.Name.Line, "%s", err.Error())
		}
		return value, nil
	}
	if err := i.global.Assign(e.Name.Lexeme, value); err != nil {
		return nil, newRuntimeError(e.Name.Line, "%s", err.Error())
	}
	return value, nil
}

func (i *Interpreter) evaluateCall(e *ast.Call, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}

	arguments := make([]runtime.Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := i.evaluateExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	callable, ok := callee.(runtime.Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren.Line, "Can only call functions.")
	}
	if len(arguments) != callable.Arity() {
		return nil, newRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}

	return i.call(callable, arguments)
}

// call implements spec.md §4.3.3: a fresh frame parented on the
// callable's captured closure (not the caller's frame), positional
// parameter binding, and return-signal unwrapping.
func (i *Interpreter) call(callable runtime.Callable, arguments []runtime.Value) (runtime.Value, error) {
	switch fn := callable.(type) {
	case *runtime.FunctionValue:
		callEnv := runtime.NewEnvironment(fn.Closure)
		for idx, name := range fn.Params {
			callEnv.Define(name, arguments[idx])
		}
		_, err := i.executeBlock(fn.Body, callEnv)
		if err != nil {
			if ret, ok := err.(returnSignal); ok {
				return ret.value, nil
			}
			return nil, err
		}
		return runtime.NilValue{}, nil
	case *runtime.NativeFunctionValue:
		return fn.Call(nil, arguments)
	default:
		return fn.Call(nil, arguments)
	}
}
