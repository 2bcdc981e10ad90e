package lexer

import (
	"testing"

	"ember/interpreter/pkg/token"
)

type collectingSink struct {
	reports []string
}

func (s *collectingSink) Report(line int, message string) {
	s.reports = append(s.reports, message)
}

func scanTypes(t *testing.T, source string) []token.Type {
	t.Helper()
	sink := &collectingSink{}
	l := New(source, sink)
	tokens := l.ScanTokens()
	if len(sink.reports) > 0 {
		t.Fatalf("unexpected lexer errors for %q: %v", source, sink.reports)
	}
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Type
	}{
		{"(", []token.Type{token.LeftParen, token.EOF}},
		{"!= ! == = <= < >= >", []token.Type{
			token.BangEqual, token.Bang, token.EqualEqual, token.Equal,
			token.LessEqual, token.Less, token.GreaterEqual, token.Greater,
			token.EOF,
		}},
		{"? :", []token.Type{token.Question, token.Colon, token.EOF}},
	}
	for _, tt := range tests {
		got := scanTypes(t, tt.source)
		if !typesEqual(got, tt.want) {
			t.Fatalf("scanTypes(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestScanTokensSkipsLineComments(t *testing.T) {
	got := scanTypes(t, "1 // this is a comment\n2")
	want := []token.Type{token.Number, token.Number, token.EOF}
	if !typesEqual(got, want) {
		t.Fatalf("scanTypes with comment = %v, want %v", got, want)
	}
}

func TestScanTokensKeywordsVsIdentifiers(t *testing.T) {
	sink := &collectingSink{}
	l := New("var fun x print", sink)
	tokens := l.ScanTokens()
	want := []token.Type{token.Var, token.Fun, token.Identifier, token.Print, token.EOF}
	got := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Type
	}
	if !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestScanTokensStringLiteral(t *testing.T) {
	sink := &collectingSink{}
	l := New(`"hello world"`, sink)
	tokens := l.ScanTokens()
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens (string + EOF), got %d", len(tokens))
	}
	if tokens[0].Type != token.String || tokens[0].Literal != "hello world" {
		t.Fatalf("unexpected string token: %+v", tokens[0])
	}
}

func TestScanTokensUnterminatedString(t *testing.T) {
	sink := &collectingSink{}
	l := New(`"unterminated`, sink)
	l.ScanTokens()
	if len(sink.reports) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", sink.reports)
	}
}

func TestScanTokensNumberLiteral(t *testing.T) {
	sink := &collectingSink{}
	l := New("3.14", sink)
	tokens := l.ScanTokens()
	if tokens[0].Type != token.Number || tokens[0].Literal != 3.14 {
		t.Fatalf("unexpected number token: %+v", tokens[0])
	}
}

func TestScanTokensUnexpectedCharacterReportsAndContinues(t *testing.T) {
	sink := &collectingSink{}
	l := New("1 @ 2", sink)
	tokens := l.ScanTokens()
	if len(sink.reports) != 1 {
		t.Fatalf("expected one diagnostic for '@', got %v", sink.reports)
	}
	want := []token.Type{token.Number, token.Number, token.EOF}
	got := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Type
	}
	if !typesEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestScanTokensTracksLineNumbers(t *testing.T) {
	sink := &collectingSink{}
	l := New("1\n2\n3", sink)
	tokens := l.ScanTokens()
	for i, want := range []int{1, 2, 3} {
		if tokens[i].Line != want {
			t.Fatalf("token %d: line = %d, want %d", i, tokens[i].Line, want)
		}
	}
}

func typesEqual(a, b []token.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
