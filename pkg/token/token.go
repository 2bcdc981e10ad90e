// Package token defines the lexical token vocabulary shared by the
// lexer, parser, and resolver.
package token

import "fmt"

// Type identifies the lexical category of a token.
type Type int

const (
	// Single-character punctuation.
	LeftParen Type = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Question
	Colon

	// One or two character punctuation.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	True
	Var
	While
	Break

	EOF
)

var names = map[Type]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";",
	Slash: "/", Star: "*", Question: "?", Colon: ":",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "IDENTIFIER", String: "STRING", Number: "NUMBER",
	And: "and", Else: "else", False: "false", Fun: "fun", For: "for",
	If: "if", Nil: "nil", Or: "or", Print: "print", Return: "return",
	True: "true", Var: "var", While: "while", Break: "break",
	EOF: "EOF",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Keywords maps reserved identifiers to their token type.
var Keywords = map[string]Type{
	"and": And, "else": Else, "false": False, "fun": Fun, "for": For,
	"if": If, "nil": Nil, "or": Or, "print": Print, "return": Return,
	"true": True, "var": Var, "while": While, "break": Break,
}

// Token is a single lexeme produced by the lexer.
type Token struct {
	Type    Type
	Lexeme  string
	Literal any // decoded value for Number/String tokens; nil otherwise
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
}
