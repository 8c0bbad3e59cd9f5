package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseStatement dispatches on the current token's reserved/modifier
// lexeme. Top-level-only constructs (import/export) are still accepted
// here; the evaluator, not the parser, rejects them in a nested block if
// that is ever required.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIsLexeme("import"):
		return p.parseImportStatement()
	case p.curIsLexeme("export"):
		return p.parseExportStatement()
	case p.curIsLexeme("type"):
		return p.parseTypeAliasStatement()
	case p.curIsLexeme("interface"):
		return p.parseInterfaceStatement()
	case p.curIsLexeme("enum"):
		return p.parseEnumStatement()
	case p.curIsLexeme("class"):
		return p.parseClassStatement(nil)
	case p.curIsLexeme("function"):
		return p.parseFunctionStatement(nil)
	case p.curIsLexeme("const"), p.curIsLexeme("let"):
		return p.parseVariableStatement()
	case p.curIsLexeme("if"):
		return p.parseIfStatement()
	case p.curIsLexeme("return"):
		return p.parseReturnStatement()
	case p.curIsLexeme("for"), p.curIsLexeme("in"), p.curIsLexeme("of"):
		return p.parseUnsupportedLoopStatement()
	case p.curToken.Type == token.MODIFIER:
		return p.parseModifiedStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseUnsupportedLoopStatement rejects for/in/of: the reserved words are
// lexed, but the grammar has no loop construct. It skips to the next
// statement boundary so one bad loop doesn't cascade into a wall of
// follow-on parse errors.
func (p *Parser) parseUnsupportedLoopStatement() ast.Statement {
	p.errorf("loop constructs (%s) are not part of this language", p.curToken.Lexeme)
	for !p.curIs(token.SEMICOLON) && !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		p.nextToken()
	}
	return nil
}

// parseModifiedStatement collects leading modifiers (public, static, ...)
// in front of a class or function declaration.
func (p *Parser) parseModifiedStatement() ast.Statement {
	var mods []string
	for p.curToken.Type == token.MODIFIER {
		mods = append(mods, p.curToken.Lexeme)
		p.nextToken()
	}
	switch {
	case p.curIsLexeme("class"):
		return p.parseClassStatement(mods)
	case p.curIsLexeme("function"):
		return p.parseFunctionStatement(mods)
	default:
		p.errorf("expected class or function after modifiers")
		return nil
	}
}

func (p *Parser) parseImportStatement() ast.Statement {
	start := p.curSpan()
	stmt := &ast.ImportStatement{}

	if p.peekIs(token.ASTERISK) {
		p.nextToken() // *
		// `as` is lexed as RESERVED, not IDENT, so it is matched by lexeme
		if !p.expectPeekLexeme("as") {
			return nil
		}
		p.nextToken()
		stmt.NamespaceAs = p.curToken.Lexeme
	} else if p.expectPeek(token.LBRACE) {
		p.nextToken()
		for !p.curIs(token.RBRACE) {
			spec := ast.ImportSpecifier{Name: p.curToken.Lexeme, Alias: p.curToken.Lexeme}
			if p.peekIsLexeme("as") {
				p.nextToken()
				p.nextToken()
				spec.Alias = p.curToken.Lexeme
			}
			stmt.Specifiers = append(stmt.Specifiers, spec)
			if p.peekIs(token.COMMA) {
				p.nextToken()
			}
			p.nextToken()
		}
	}

	if !p.expectPeekLexeme("from") {
		return nil
	}
	if !p.expectPeek(token.STRING) {
		return nil
	}
	stmt.Module = p.curToken.Literal.(string)
	stmt.Span = p.spanFrom(start)
	p.skipSemicolon()
	return stmt
}

func (p *Parser) peekIsLexeme(lexeme string) bool {
	return (p.peekToken.Type == token.RESERVED || p.peekToken.Type == token.MODIFIER) && p.peekToken.Lexeme == lexeme
}

func (p *Parser) expectPeekLexeme(lexeme string) bool {
	if p.peekIsLexeme(lexeme) {
		p.nextToken()
		return true
	}
	p.errorf("expected %q, got %q", lexeme, p.peekToken.Lexeme)
	return false
}

func (p *Parser) parseExportStatement() ast.Statement {
	start := p.curSpan()
	p.nextToken()
	inner := p.parseStatement()
	return &ast.ExportStatement{Base: ast.Base{Span: p.spanFrom(start)}, Decl: inner}
}

func (p *Parser) parseTypeAliasStatement() ast.Statement {
	start := p.curSpan()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	typ := p.parseType()
	stmt := &ast.TypeAliasStatement{Base: ast.Base{Span: p.spanFrom(start)}, Name: name, Type: typ}
	p.skipSemicolon()
	return stmt
}

func (p *Parser) parseInterfaceStatement() ast.Statement {
	start := p.curSpan()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt := &ast.InterfaceStatement{Name: p.curToken.Lexeme}

	if p.peekIsLexeme("extends") {
		p.nextToken()
		p.nextToken()
		stmt.Extends = append(stmt.Extends, p.curToken.Lexeme)
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			stmt.Extends = append(stmt.Extends, p.curToken.Lexeme)
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt.Members = append(stmt.Members, p.parseTypeMember())
		if p.curIs(token.COMMA) || p.curIs(token.SEMICOLON) {
			p.nextToken()
		}
	}
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseEnumStatement() ast.Statement {
	start := p.curSpan()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt := &ast.EnumStatement{Name: p.curToken.Lexeme}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		member := ast.EnumMember{Name: p.curToken.Lexeme}
		if p.peekIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			member.Initializer = p.parseExpression(Lowest)
		}
		stmt.Members = append(stmt.Members, member)
		if p.peekIs(token.COMMA) {
			p.nextToken()
		}
		p.nextToken()
	}
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseFunctionStatement(mods []string) ast.Statement {
	start := p.curSpan()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt := &ast.FunctionStatement{Modifiers: mods, Name: p.curToken.Lexeme}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Params = p.parseParamList()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.ReturnType = p.parseType()
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlock()
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseClassStatement(mods []string) ast.Statement {
	start := p.curSpan()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt := &ast.ClassStatement{Modifiers: mods, Name: p.curToken.Lexeme}

	if p.peekIsLexeme("extends") {
		p.nextToken()
		p.nextToken()
		stmt.Extends = p.curToken.Lexeme
	}
	if p.peekIsLexeme("implements") {
		p.nextToken()
		p.nextToken()
		stmt.Implements = append(stmt.Implements, p.curToken.Lexeme)
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			stmt.Implements = append(stmt.Implements, p.curToken.Lexeme)
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt.Members = append(stmt.Members, p.parseClassMember())
		p.nextToken()
	}
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseClassMember() ast.ClassMember {
	var member ast.ClassMember
	for p.curToken.Type == token.MODIFIER {
		member.Modifiers = append(member.Modifiers, p.curToken.Lexeme)
		p.nextToken()
	}

	switch {
	case p.curIsLexeme("constructor"):
		member.Kind = ast.ConstructorMember
		p.nextToken() // (
		member.Params = p.parseParamList()
		p.expectPeek(token.RPAREN)
		p.expectPeek(token.LBRACE)
		member.Body = p.parseBlock()
		return member
	case p.curIsLexeme("get"):
		member.Kind = ast.GetterMember
		p.nextToken()
		member.Name = p.curToken.Lexeme
		p.expectPeek(token.LPAREN)
		p.expectPeek(token.RPAREN)
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			member.Type = p.parseType()
		}
		p.expectPeek(token.LBRACE)
		member.Body = p.parseBlock()
		return member
	case p.curIsLexeme("set"):
		member.Kind = ast.SetterMember
		p.nextToken()
		member.Name = p.curToken.Lexeme
		p.expectPeek(token.LPAREN)
		member.Params = p.parseParamList()
		p.expectPeek(token.RPAREN)
		p.expectPeek(token.LBRACE)
		member.Body = p.parseBlock()
		return member
	case p.curIsLexeme("operator"):
		member.IsOperator = true
		p.nextToken()
	}

	member.Name = p.curToken.Lexeme

	if p.peekIs(token.LPAREN) {
		member.Kind = ast.MethodMember
		p.nextToken()
		member.Params = p.parseParamList()
		p.expectPeek(token.RPAREN)
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			member.Type = p.parseType()
		}
		p.expectPeek(token.LBRACE)
		member.Body = p.parseBlock()
		return member
	}

	member.Kind = ast.FieldMember
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		member.Type = p.parseType()
	}
	if p.peekIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		member.Initializer = p.parseExpression(Lowest)
	}
	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
	return member
}

func (p *Parser) parseVariableStatement() ast.Statement {
	start := p.curSpan()
	isConst := p.curIsLexeme("const")
	stmt := &ast.VariableStatement{Const: isConst}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		decl := ast.VariableDeclarator{Name: p.curToken.Lexeme}
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			decl.Type = p.parseType()
		}
		if p.peekIs(token.ASSIGN) {
			p.nextToken()
			p.nextToken()
			decl.Initializer = p.parseExpression(Lowest)
		}
		stmt.Declarators = append(stmt.Declarators, decl)
		if p.peekIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(token.SEMICOLON) {
		p.errorf("variable declarations require a trailing ';'")
	}
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.curSpan()
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(Lowest)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	then := p.parseStatement()

	var elseStmt ast.Statement
	if p.peekIsLexeme("else") {
		p.nextToken()
		p.nextToken()
		elseStmt = p.parseStatement()
	}

	return &ast.IfStatement{Base: ast.Base{Span: p.spanFrom(start)}, Condition: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.curSpan()
	stmt := &ast.ReturnStatement{}
	if !p.peekIs(token.SEMICOLON) {
		p.nextToken()
		stmt.Value = p.parseExpression(Lowest)
	}
	p.skipSemicolon()
	stmt.Span = p.spanFrom(start)
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.curSpan()
	expr := p.parseExpression(Lowest)
	stmt := &ast.ExpressionStatement{Base: ast.Base{Span: p.spanFrom(start)}, Expr: expr}
	p.skipSemicolon()
	return stmt
}
