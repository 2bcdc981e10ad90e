package parser

import (
	"ember/interpreter/pkg/ast"
	"ember/interpreter/pkg/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative; the left-hand side produced by
// ternary() must be a Variable node, otherwise "Invalid assignment
// target" is reported as a non-fatal diagnostic and the left-hand side
// (without the assignment) is returned (spec.md §4.1.4).
func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{ID: p.nodeID(), Name: v.Name, Value: value}
		}

		p.sink.ReportAt(equals, "Invalid assignment target")
	}

	return expr
}

func (p *Parser) ternary() ast.Expr {
	expr := p.or()

	if p.match(token.Question) {
		ifTrue := p.ternary()
		p.consume(token.Colon, "Expected ':' in ternary operator.")
		ifFalse := p.ternary()
		return &ast.Ternary{Cond: expr, IfTrue: ifTrue, IfFalse: ifFalse}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Minus, token.Bang) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.lambda()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var arguments []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(arguments) >= 255 {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}

	paren := p.consume(token.RightParen, "Function call must be closed out by a ')'")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: arguments}
}

// lambda recognizes `fun (params) { body }` as an anonymous function
// expression; a named declaration is only chosen one level up in
// declaration() when `fun` is followed directly by an identifier
// (spec.md §4.1.2).
func (p *Parser) lambda() ast.Expr {
	if p.match(token.Fun) {
		params := p.parameters("lambda")
		body := p.bodyBlock("lambda")
		return &ast.Function{Params: params, Body: body}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	case p.match(token.Identifier):
		return &ast.Variable{ID: p.nodeID(), Name: p.previous()}
	}

	panic(p.error(p.peek(), "Expect expression."))
}
