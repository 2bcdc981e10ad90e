package interpreter

import (
	"ember/interpreter/pkg/ast"
	"ember/interpreter/pkg/runtime"
)

func (i *Interpreter) executeStmt(stmt ast.Stmt, env *runtime.Environment) (runtime.Value, error) {
	switch s := stmt.(type) {
	case *ast.Expression:
		return i.evaluateExpr(s.Expr, env)
	case *ast.Print:
		return i.executePrint(s, env)
	case *ast.Var:
		return i.executeVar(s, env)
	case *ast.Block:
		return i.executeBlock(s.Statements, runtime.NewEnvironment(env))
	case *ast.If:
		return i.executeIf(s, env)
	case *ast.While:
		return i.executeWhile(s, env)
	case *ast.Break:
		return nil, breakSignal{}
	case *ast.FunctionDecl:
		return i.executeFunctionDecl(s, env)
	case *ast.Return:
		return i.executeReturn(s, env)
	default:
		return nil, newRuntimeError(0, "interpreter: unhandled statement type %T", stmt)
	}
}

func (i *Interpreter) executePrint(s *ast.Print, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpr(s.Expr, env)
	if err != nil {
		return nil, err
	}
	io_writeLine(i.stdout, i.stringify(val))
	return runtime.NilValue{}, nil
}

func (i *Interpreter) executeVar(s *ast.Var, env *runtime.Environment) (runtime.Value, error) {
	var value runtime.Value = runtime.NilValue{}
	if s.Initializer != nil {
		v, err := i.evaluateExpr(s.Initializer, env)
		if err != nil {
			return nil, err
		}
		value = v
	}
	env.Define(s.Name.Lexeme, value)
	return runtime.NilValue{}, nil
}

// executeBlock runs statements against env, which the caller has
// already set up as the right frame: a fresh child frame for an
// ordinary Block, or the freshly-built call frame for a function
// invocation (spec.md §4.3.2, §4.3.3). Any non-local signal
// (return/break) or error unwinds immediately without restoring a
// different frame — the caller's frame pointer is just a Go local
// variable, so it is implicitly "restored" on return from this call.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NilValue{}
	for _, stmt := range statements {
		val, err := i.executeStmt(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) executeIf(s *ast.If, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpr(s.Condition, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return i.executeStmt(s.ThenBranch, env)
	}
	if s.ElseBranch != nil {
		return i.executeStmt(s.ElseBranch, env)
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) executeWhile(s *ast.While, env *runtime.Environment) (runtime.Value, error) {
	for {
		cond, err := i.evaluateExpr(s.Condition, env)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return runtime.NilValue{}, nil
		}
		_, err = i.executeStmt(s.Body, env)
		if err != nil {
			if _, ok := err.(breakSignal); ok {
				return runtime.NilValue{}, nil
			}
			return nil, err
		}
	}
}

func (i *Interpreter) executeFunctionDecl(s *ast.FunctionDecl, env *runtime.Environment) (runtime.Value, error) {
	fn := &runtime.FunctionValue{
		Name:    s.Name.Lexeme,
		Params:  paramNames(s.Params),
		Body:    s.Body,
		Closure: env,
	}
	env.Define(s.Name.Lexeme, fn)
	return runtime.NilValue{}, nil
}

func (i *Interpreter) executeReturn(s *ast.Return, env *runtime.Environment) (runtime.Value, error) {
	var value runtime.Value = runtime.NilValue{}
	if s.Value != nil {
		v, err := i.evaluateExpr(s.Value, env)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, returnSignal{value: value}
}

