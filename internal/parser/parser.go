// Package parser implements a position-threaded recursive-descent parser
// with a Pratt expression core: curToken/peekToken plus a prefix/infix
// function table keyed by token type, over this grammar's own precedence
// table and atom list.
package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/token"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Precedence levels, low to high, plus a Logic level for &&/|| (placed
// just above Lowest since logical connectives conventionally bind
// loosest).
const (
	Lowest = iota
	Logic  // && ||
	Equals // = == !=
	LessGreater
	Sum     // + -
	Product // * / ++ -- !
	Call    // f( ... )
	Index   // a[i] a.b
)

var precedences = map[token.Type]int{
	token.AND:       Logic,
	token.OR:        Logic,
	token.ASSIGN:    Equals,
	token.EQ:        Equals,
	token.NOT_EQ:    Equals,
	token.LT:        LessGreater,
	token.GT:        LessGreater,
	token.LTE:       LessGreater,
	token.GTE:       LessGreater,
	token.PLUS:      Sum,
	token.MINUS:     Sum,
	token.ASTERISK:  Product,
	token.SLASH:     Product,
	token.INCREMENT: Product,
	token.DECREMENT: Product,
	token.LPAREN:    Call,
	token.LBRACKET:  Index,
	token.DOT:       Index,
}

// Parser holds the token-stream state. Construct with New and call
// ParseProgram exactly once.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*diagnostics.Error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{}
	p.infixParseFns = map[token.Type]infixParseFn{}

	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.BOOLEAN, p.parseBooleanLiteral)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LBRACKET, p.parseArrayExpression)
	p.registerPrefix(token.LBRACE, p.parseBlockAsExpression)
	p.registerPrefix(token.LPAREN, p.parseParenOrArrowFunction)

	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LTE, p.parseInfixExpression)
	p.registerInfix(token.GTE, p.parseInfixExpression)
	p.registerInfix(token.AND, p.parseInfixExpression)
	p.registerInfix(token.OR, p.parseInfixExpression)
	p.registerInfix(token.ASSIGN, p.parseAssignExpression)
	p.registerInfix(token.INCREMENT, p.parsePostfixExpression)
	p.registerInfix(token.DECREMENT, p.parsePostfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)
	p.registerInfix(token.DOT, p.parseDotExpression)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) Errors() []*diagnostics.Error { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curSpan() diagnostics.Span {
	return diagnostics.Span{Start: p.curToken.Offset, End: p.curToken.End, Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) spanFrom(start diagnostics.Span) diagnostics.Span {
	return diagnostics.Span{Start: start.Start, End: p.curToken.Offset, Line: start.Line, Column: start.Column}
}

func (p *Parser) curIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) curIsLexeme(lexeme string) bool {
	return (p.curToken.Type == token.RESERVED || p.curToken.Type == token.MODIFIER) && p.curToken.Lexeme == lexeme
}

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, got %s (%q)", t, p.peekToken.Type, p.peekToken.Lexeme)
	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.New(p.curSpan(), diagnostics.Declaration, format, args...))
}

func (p *Parser) precedence(t token.Type) int {
	if prec, ok := precedences[t]; ok {
		return prec
	}
	return Lowest
}

// ParseProgram parses the whole token stream into a program. Parsing is
// fatal-per-file: once an unrecoverable construct is hit, remaining errors
// still accumulate in Errors() but the resulting tree may be partial.
func (p *Parser) ParseProgram() *ast.Positioned[*ast.Program] {
	start := p.curSpan()
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.nextToken()
	}
	prog.Span = p.spanFrom(start)
	return &ast.Positioned[*ast.Program]{Value: prog, Span: prog.Span}
}

func (p *Parser) skipSemicolon() {
	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
}
