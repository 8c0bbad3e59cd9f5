package parser

import (
	"strconv"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseExpression is the Pratt loop: one prefix atom, then repeatedly bind
// higher-precedence infix/postfix operators.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	var left ast.Expression
	switch {
	case p.curIsLexeme("new"):
		left = p.parseNewExpression()
	case p.curIsLexeme("match"):
		left = p.parseMatchExpression()
	case p.curIsLexeme("this"):
		left = p.parseThisExpression()
	case p.curIsLexeme("null"):
		left = p.parseNullExpression()
	default:
		prefix := p.prefixParseFns[p.curToken.Type]
		if prefix == nil {
			p.errorf("no prefix parse function for %s (%q)", p.curToken.Type, p.curToken.Lexeme)
			return nil
		}
		left = prefix()
	}
	if left == nil {
		return nil
	}

	for !p.peekIs(token.SEMICOLON) && precedence < p.precedence(p.peekToken.Type) {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	start := p.curSpan()
	v, err := strconv.ParseInt(p.curToken.Lexeme, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", p.curToken.Lexeme)
	}
	return &ast.IntegerLiteral{Base: ast.Base{Span: start}, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	start := p.curSpan()
	v, err := strconv.ParseFloat(p.curToken.Lexeme, 64)
	if err != nil {
		p.errorf("invalid float literal %q", p.curToken.Lexeme)
	}
	return &ast.FloatLiteral{Base: ast.Base{Span: start}, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	start := p.curSpan()
	return &ast.StringLiteral{Base: ast.Base{Span: start}, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	start := p.curSpan()
	return &ast.BooleanLiteral{Base: ast.Base{Span: start}, Value: p.curToken.Lexeme == "true"}
}

func (p *Parser) parseIdentifier() ast.Expression {
	start := p.curSpan()
	return &ast.Identifier{Base: ast.Base{Span: start}, Name: p.curToken.Lexeme}
}

func (p *Parser) parseThisExpression() ast.Expression {
	start := p.curSpan()
	return &ast.ThisExpression{Base: ast.Base{Span: start}}
}

func (p *Parser) parseNullExpression() ast.Expression {
	start := p.curSpan()
	return &ast.NullLiteral{Base: ast.Base{Span: start}}
}

// parsePrefixExpression handles `!x` and unary `-x`. `!x` is a
// BinaryExpression with Left == nil; unary minus is desugared to `0 - x`
// so the evaluator only ever needs its normal binary subtraction rule.
// `++`/`--` are postfix-only (see parsePostfixExpression) and are never
// registered as prefix parsers.
func (p *Parser) parsePrefixExpression() ast.Expression {
	start := p.curSpan()
	op := p.curToken.Type
	if op == token.MINUS {
		p.nextToken()
		operand := p.parseExpression(Product)
		return &ast.BinaryExpression{
			Base:     ast.Base{Span: start},
			Operator: token.MINUS,
			Left:     &ast.IntegerLiteral{Base: ast.Base{Span: start}, Value: 0},
			Right:    operand,
		}
	}
	p.nextToken()
	right := p.parseExpression(Product)
	return &ast.BinaryExpression{Base: ast.Base{Span: p.spanFrom(start)}, Operator: op, Left: nil, Right: right}
}

func (p *Parser) parsePostfixExpression(left ast.Expression) ast.Expression {
	op := p.curToken.Type
	return &ast.BinaryExpression{Base: ast.Base{Span: left.Pos()}, Operator: op, Left: left, Right: nil}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	op := p.curToken.Type
	prec := p.precedence(p.curToken.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{Base: ast.Base{Span: left.Pos().Between(p.curSpan())}, Operator: op, Left: left, Right: right}
}

// parseAssignExpression is right-associative: `a = b = c` parses as
// `a = (b = c)`.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	p.nextToken()
	right := p.parseExpression(Lowest)
	return &ast.BinaryExpression{Base: ast.Base{Span: left.Pos().Between(p.curSpan())}, Operator: token.ASSIGN, Left: left, Right: right}
}

func (p *Parser) parseDotExpression(left ast.Expression) ast.Expression {
	p.expectPeek(token.IDENT)
	name := p.curToken.Lexeme
	return &ast.IndexExpression{
		Base:   ast.Base{Span: left.Pos().Between(p.curSpan())},
		Object: left,
		Index:  &ast.StringLiteral{Base: ast.Base{Span: p.curSpan()}, Value: name},
	}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	start := left.Pos()
	p.nextToken()
	idx := p.parseExpression(Lowest)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Base: ast.Base{Span: p.spanFrom(start)}, Object: left, Index: idx}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	start := callee.Pos()
	args := p.parseExpressionList(token.RPAREN)

	var lambda *ast.ArrowFunctionExpression
	if p.peekIs(token.LBRACE) {
		p.nextToken()
		blockStart := p.curSpan()
		block := p.parseBlock()
		lambda = &ast.ArrowFunctionExpression{
			Base: ast.Base{Span: p.spanFrom(blockStart)},
			Body: block,
		}
	}

	return &ast.CallExpression{Base: ast.Base{Span: p.spanFrom(start)}, Callee: callee, Args: args, Lambda: lambda}
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(Lowest))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(Lowest))
	}
	if !p.expectPeek(end) {
		return list
	}
	return list
}

func (p *Parser) parseArrayExpression() ast.Expression {
	start := p.curSpan()
	elements := p.parseExpressionList(token.RBRACKET)
	return &ast.ArrayExpression{Base: ast.Base{Span: p.spanFrom(start)}, Elements: elements, IsDynamic: true}
}

func (p *Parser) parseBlock() *ast.BlockExpression {
	start := p.curSpan()
	block := &ast.BlockExpression{}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	block.Span = p.spanFrom(start)
	return block
}

func (p *Parser) parseBlockAsExpression() ast.Expression {
	return p.parseBlock()
}

// parseParenOrArrowFunction treats every parenthesized atom as an arrow
// function `(params) [: T] => expr`, since this grammar's atom list (spec
// §4.2) has no bare grouping atom alongside it.
func (p *Parser) parseParenOrArrowFunction() ast.Expression {
	start := p.curSpan()
	params := p.parseParamList()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	var retType ast.TypeExpr
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		retType = p.parseType()
	}

	if !p.expectPeek(token.ARROW) {
		p.errorf("expected => after parameter list")
		return nil
	}
	p.nextToken()

	var body ast.Expression
	if p.curIs(token.LBRACE) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression(Lowest)
	}

	return &ast.ArrowFunctionExpression{
		Base:       ast.Base{Span: p.spanFrom(start)},
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if p.peekIs(token.RPAREN) {
		return params
	}
	p.nextToken()
	params = append(params, p.parseParam())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParam())
	}
	return params
}

func (p *Parser) parseParam() ast.Param {
	var param ast.Param
	if p.curIs(token.ELLIPSIS) {
		param.Rest = true
		p.nextToken()
	}
	param.Name = p.curToken.Lexeme
	if p.peekIs(token.QUESTION) {
		param.Optional = true
		p.nextToken()
	}
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = p.parseType()
	}
	if p.peekIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		param.Default = p.parseExpression(Lowest)
		param.Optional = true
	}
	return param
}

func (p *Parser) parseNewExpression() ast.Expression {
	start := p.curSpan()
	p.nextToken() // consume `new`
	callee := p.parseExpression(Product)
	if ce, ok := callee.(*ast.CallExpression); ok {
		return &ast.NewExpression{Base: ast.Base{Span: p.spanFrom(start)}, Callee: ce.Callee, Args: ce.Args}
	}
	return &ast.NewExpression{Base: ast.Base{Span: p.spanFrom(start)}, Callee: callee}
}

func (p *Parser) parseMatchExpression() ast.Expression {
	start := p.curSpan()
	p.nextToken() // consume `match`
	parens := p.curIs(token.LPAREN)
	if parens {
		p.nextToken()
	}
	scrutinee := p.parseExpression(Lowest)
	if parens && !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	var arms []ast.MatchArm
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		var arm ast.MatchArm
		if p.curIsLexeme("default") {
			arm.Value = nil
		} else if p.curIsLexeme("when") {
			if !p.expectPeek(token.LPAREN) {
				return nil
			}
			p.nextToken()
			arm.Value = p.parseExpression(Lowest)
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		} else {
			arm.Value = p.parseExpression(Lowest)
		}
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		p.nextToken()
		arm.Body = &ast.ExpressionStatement{Expr: p.parseExpression(Lowest)}
		arms = append(arms, arm)
		if p.peekIs(token.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}

	return &ast.MatchExpression{Base: ast.Base{Span: p.spanFrom(start)}, Scrutinee: scrutinee, Arms: arms}
}
