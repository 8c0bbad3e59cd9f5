// Package token defines the tagged token stream produced by the lexer and
// consumed by the parser: a flat string-tagged TokenType plus a Token
// carrying its lexeme, literal payload, and source position.
package token

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/config"
)

// Type tags a Token's kind. It is a string so new kinds are easy to add
// and print without a generator.
type Type string

// Token is a single lexeme with its source position. Line and Column
// refer to the first byte of the token; Offset/End give the half-open
// byte span needed in addition to line/column.
type Token struct {
	Type    Type
	Lexeme  string
	Literal interface{} // int64, float64, bool, or string depending on Type
	Line    int
	Column  int
	Offset  int
	End     int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Type, t.Lexeme)
}

// Special tokens.
const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"
	COMMENT Type = "COMMENT"
	IDENT   Type = "IDENT"
)

// Literal tokens.
const (
	INT     Type = "INT"
	FLOAT   Type = "FLOAT"
	STRING  Type = "STRING"
	BOOLEAN Type = "BOOLEAN"
)

// BuiltInType is a predefined type name (any, number, float, boolean,
// string, symbol, void).
const BUILTIN_TYPE Type = "BUILTIN_TYPE"

// RESERVED is any of the fixed reserved words in config.ReservedWords; the
// specific word is carried in Token.Lexeme.
const RESERVED Type = "RESERVED"

// MODIFIER is any of the fixed modifier keywords (public, private,
// protected, static, async).
const MODIFIER Type = "MODIFIER"

// Punctuation.
const (
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	LBRACKET  Type = "["
	RBRACKET  Type = "]"
	COMMA     Type = ","
	SEMICOLON Type = ";"
	COLON     Type = ":"
	DOT       Type = "."
	ELLIPSIS  Type = "..."
	QUESTION  Type = "?"
)

// Operators.
const (
	ASSIGN   Type = "="
	PLUS     Type = "+"
	MINUS    Type = "-"
	BANG     Type = "!"
	ASTERISK Type = "*"
	SLASH    Type = "/"

	INCREMENT Type = "++"
	DECREMENT Type = "--"

	EQ     Type = "=="
	NOT_EQ Type = "!="
	LT     Type = "<"
	GT     Type = ">"
	LTE    Type = "<="
	GTE    Type = ">="
	AND    Type = "&&"
	OR     Type = "||"

	ARROW Type = "=>"
)

// Lookup classifies an identifier-shaped lexeme against the fixed keyword
// tables in internal/config (modifiers, reserved words, predefined types,
// boolean literals), defaulting to IDENT.
func Lookup(ident string) Type {
	switch {
	case config.Modifiers[ident]:
		return MODIFIER
	case config.ReservedWords[ident]:
		return RESERVED
	case config.PredefinedTypes[ident]:
		return BUILTIN_TYPE
	case isBooleanLiteral(ident):
		return BOOLEAN
	default:
		return IDENT
	}
}

func isBooleanLiteral(ident string) bool {
	_, ok := config.BooleanLiterals[ident]
	return ok
}
