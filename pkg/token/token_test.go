package token

import "testing"

func TestTypeStringKnown(t *testing.T) {
	cases := map[Type]string{
		Plus:    "+",
		EqualEqual: "==",
		Fun:     "fun",
		Break:   "break",
		EOF:     "EOF",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Fatalf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestTypeStringUnknownFallsBackToNumeric(t *testing.T) {
	unknown := Type(9999)
	got := unknown.String()
	if got == "" {
		t.Fatalf("expected non-empty fallback for unknown type")
	}
}

func TestKeywordsCoverEveryReservedWord(t *testing.T) {
	want := []string{
		"and", "else", "false", "fun", "for", "if", "nil", "or",
		"print", "return", "true", "var", "while", "break",
	}
	for _, w := range want {
		if _, ok := Keywords[w]; !ok {
			t.Fatalf("Keywords missing entry for %q", w)
		}
	}
	if _, ok := Keywords["class"]; ok {
		t.Fatalf("Keywords should not contain 'class': no classes in this language")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: Number, Lexeme: "3", Literal: 3.0, Line: 1}
	got := tok.String()
	if got == "" {
		t.Fatalf("Token.String() returned empty string")
	}
}
