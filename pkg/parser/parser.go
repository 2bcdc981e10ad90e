// Package parser implements the recursive-descent parser described in
// spec.md §4.1: tokens in, an ordered sequence of Stmt out, with
// operator-precedence expression parsing, a small amount of syntactic
// desugaring (for-loops, function declarations vs. lambdas), and
// error recovery via synchronization.
package parser

import (
	"ember/interpreter/pkg/ast"
	"ember/interpreter/pkg/token"
)

// Sink receives parse diagnostics (spec.md §6.2).
type Sink interface {
	Report(line int, message string)
	ReportAt(tok token.Token, message string)
}

// parseError signals that the current declaration/statement could not
// be parsed and the parser should synchronize. It carries no payload;
// the diagnostic itself was already reported through the sink at the
// point of failure.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser consumes a finite token stream (terminated by an EOF token,
// per spec.md §6.1) and produces a program.
type Parser struct {
	tokens  []token.Token
	current int
	sink    Sink

	// loopDepth is the lexical loop-nesting counter used to reject
	// `break` outside any loop; it is incremented/decremented around
	// while/for bodies, not at runtime.
	loopDepth int

	// nextNodeID hands out stable identities for Variable/Assign nodes,
	// which the resolver's depth-map is keyed by (spec.md §9).
	nextNodeID int
}

// New returns a Parser over tokens, reporting diagnostics through sink.
func New(tokens []token.Token, sink Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse consumes the entire token stream and returns the program.
// Statements that failed to parse are simply absent from the result;
// the parser keeps going so it can surface further diagnostics in one
// pass (spec.md §4.1.3).
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) nodeID() int {
	p.nextNodeID++
	return p.nextNodeID
}

// ---------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------

func (p *Parser) declaration() (result ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				result = nil
				return
			}
			panic(r)
		}
	}()

	if p.check(token.Fun) && p.checkNext(token.Identifier) {
		p.advance() // consume 'fun'
		return p.functionDeclaration("function")
	}
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) functionDeclaration(kind string) ast.Stmt {
	name := p.consume(token.Identifier, "Expect "+kind+" name.")
	params := p.parameters(kind)
	body := p.bodyBlock(kind)
	return &ast.FunctionDecl{Name: name, Params: params, Body: body}
}

func (p *Parser) parameters(kind string) []token.Token {
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if p.match(token.Identifier) {
		params = append(params, p.previous())
		for p.match(token.Comma) {
			if len(params) >= 255 {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter after ','."))
		}
	}

	p.consume(token.RightParen, "Expect ')' after parameters.")
	return params
}

func (p *Parser) bodyBlock(kind string) []ast.Stmt {
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	return p.block()
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}

	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.Block{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Break):
		return p.breakStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.Print{Expr: value}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' to close out block statement.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after 'if' condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}

	return &ast.If{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.loopDepth++
	defer func() { p.loopDepth-- }()

	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after 'while' condition.")
	body := p.statement()

	return &ast.While{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; inc) body` into
// `{ init; while (cond-or-true) { body; inc; } }` per spec.md §4.1.2.
func (p *Parser) forStatement() ast.Stmt {
	p.loopDepth++
	defer func() { p.loopDepth-- }()

	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after condition clause in for loop.")

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.error(keyword, "Break statement must appear inside of loop.")
	}
	p.consume(token.Semicolon, "Expect ';' after break statement.")
	return &ast.Break{Keyword: keyword}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()

	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}

	p.consume(token.Semicolon, "Expect ';' after return statement.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// ---------------------------------------------------------------------
// Token-stream primitives
// ---------------------------------------------------------------------

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) checkNext(t token.Type) bool {
	if p.isAtEnd() || p.isNextAtEnd() {
		return false
	}
	return p.tokens[p.current+1].Type == t
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) isNextAtEnd() bool { return p.tokens[p.current+1].Type == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error reports a diagnostic and returns the sentinel used to unwind to
// the nearest declaration() and synchronize. Non-fatal call sites (e.g.
// over-arity parameters/arguments) call this but discard the return
// value, so parsing continues in place (spec.md §4.1.3).
func (p *Parser) error(tok token.Token, message string) parseError {
	p.sink.ReportAt(tok, message)
	return parseError{}
}

// synchronize discards tokens until it has either just consumed a ';'
// or is about to consume a statement-starter keyword, guaranteeing
// progress (spec.md §8.1 "Synchronization progress"): advance() is
// called at least once before either condition is checked.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}

		switch p.peek().Type {
		case token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}
