package lexer

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/token"
)

func tokenTypes(toks []token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, t := range toks {
		types[i] = t.Type
	}
	return types
}

func assertTypes(t *testing.T, input string, want ...token.Type) {
	t.Helper()
	got := tokenTypes(All(input))
	if len(got) != len(want) {
		t.Fatalf("All(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All(%q)[%d] = %s, want %s", input, i, got[i], want[i])
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	assertTypes(t, "class Foo", token.RESERVED, token.IDENT, token.EOF)
	assertTypes(t, "public static", token.MODIFIER, token.MODIFIER, token.EOF)
	assertTypes(t, "number string", token.BUILTIN_TYPE, token.BUILTIN_TYPE, token.EOF)
	assertTypes(t, "true false", token.BOOLEAN, token.BOOLEAN, token.EOF)
}

func TestNumericLiterals(t *testing.T) {
	toks := All("42")
	if toks[0].Type != token.INT || toks[0].Literal.(int64) != 42 {
		t.Fatalf("int literal = %+v", toks[0])
	}
}

// The tokenizer never promotes a digit run followed by '.' into a float
// token: "3.14" scans as INT(3), DOT, INT(14). Float literals only ever
// reach the AST as Literal::Float, not through a numeric-literal token.
func TestDecimalPointDoesNotProduceAFloatToken(t *testing.T) {
	assertTypes(t, "3.14", token.INT, token.DOT, token.INT, token.EOF)
}

func TestStringLiteral(t *testing.T) {
	toks := All(`"hello \"world\""`)
	if toks[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %s", toks[0].Type)
	}
	if toks[0].Literal.(string) != `hello "world"` {
		t.Fatalf("literal = %q", toks[0].Literal)
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	toks := All(`"unterminated`)
	if toks[0].Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", toks[0].Type)
	}
}

func TestMultiCharOperatorsLongestMatch(t *testing.T) {
	assertTypes(t, "= == => + ++ - -- < <= > >= && || ...",
		token.ASSIGN, token.EQ, token.ARROW,
		token.PLUS, token.INCREMENT,
		token.MINUS, token.DECREMENT,
		token.LT, token.LTE, token.GT, token.GTE,
		token.AND, token.OR, token.ELLIPSIS, token.EOF)
}

func TestCommentsAreStripped(t *testing.T) {
	assertTypes(t, "let x // this is a comment\n= 1", token.RESERVED, token.IDENT, token.ASSIGN, token.INT, token.EOF)
}

func TestIllegalByteContinuesScanning(t *testing.T) {
	toks := All("let % x")
	if toks[0].Type != token.RESERVED {
		t.Fatalf("toks[0] = %+v", toks[0])
	}
	if toks[1].Type != token.ILLEGAL {
		t.Fatalf("toks[1] = %+v, want ILLEGAL", toks[1])
	}
	if toks[2].Type != token.IDENT {
		t.Fatalf("toks[2] = %+v, want IDENT", toks[2])
	}
}

func TestEveryStreamEndsWithExactlyOneEOF(t *testing.T) {
	toks := All("let x = 1;")
	last := toks[len(toks)-1]
	if last.Type != token.EOF {
		t.Fatalf("last token = %s, want EOF", last.Type)
	}
	for _, tk := range toks[:len(toks)-1] {
		if tk.Type == token.EOF {
			t.Fatalf("EOF appeared before end of stream: %+v", toks)
		}
	}
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	toks := All("let x\nlet y")
	// second "let" should be on line 2
	var secondLet token.Token
	count := 0
	for _, tk := range toks {
		if tk.Type == token.RESERVED {
			count++
			if count == 2 {
				secondLet = tk
			}
		}
	}
	if secondLet.Line != 2 {
		t.Fatalf("second let line = %d, want 2", secondLet.Line)
	}
}
