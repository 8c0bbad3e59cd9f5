package parser

import (
	"strconv"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

var predefinedTypeNames = map[string]bool{
	"any": true, "number": true, "float": true, "boolean": true,
	"string": true, "symbol": true, "void": true, "null": true,
}

// parseType is the grammar's entry point: Type := ConstructorType |
// FunctionType | UnionOrIntersectionOrPrimary.
func (p *Parser) parseType() ast.TypeExpr {
	if p.curIsLexeme("new") {
		return p.parseConstructorType()
	}
	if p.curIs(token.LPAREN) {
		if save := p.tryFunctionType(); save != nil {
			return save
		}
	}
	return p.parseUnionType()
}

// tryFunctionType parses `(params) => Type`. On failure it records a parse
// error and returns nil; parseType then continues with the union/primary
// grammar from the token where the attempt stopped.
func (p *Parser) tryFunctionType() ast.TypeExpr {
	start := p.curSpan()
	params := p.parseParamList()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		p.errorf("expected => in function type")
		return nil
	}
	p.nextToken()
	ret := p.parseType()
	return &ast.FunctionType{Base: ast.Base{Span: p.spanFrom(start)}, Params: params, Return: ret}
}

func (p *Parser) parseConstructorType() ast.TypeExpr {
	start := p.curSpan()
	p.nextToken() // consume `new`
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	ret := p.parseType()
	return &ast.ConstructorType{Base: ast.Base{Span: p.spanFrom(start)}, Params: params, Return: ret}
}

// parseUnionType recognizes `A | B | ...` only when at least two
// intersection-or-primary types are separated by `|`; a single operand
// descends straight through with no Union wrapper.
func (p *Parser) parseUnionType() ast.TypeExpr {
	start := p.curSpan()
	first := p.parseIntersectionType()
	if !p.peekIs(token.OR) {
		return first
	}
	types := []ast.TypeExpr{first}
	for p.peekIs(token.OR) {
		p.nextToken()
		p.nextToken()
		types = append(types, p.parseIntersectionType())
	}
	return &ast.UnionType{Base: ast.Base{Span: p.spanFrom(start)}, Types: types}
}

func (p *Parser) parseIntersectionType() ast.TypeExpr {
	start := p.curSpan()
	first := p.parsePrimaryTypeWithArraySuffix()
	// '&' is not in the operator token set; intersection types use the
	// fixed AND token reused from expressions (consistent with the
	// grammar's reuse of && elsewhere for logical conjunction at the type
	// level is not meaningful, so intersection here is recognized via a
	// single primary only when the language's object-type members make it
	// syntactically distinguishable). Kept as a pass-through for primaries.
	if !p.peekIs(token.AND) {
		return first
	}
	types := []ast.TypeExpr{first}
	for p.peekIs(token.AND) {
		p.nextToken()
		p.nextToken()
		types = append(types, p.parsePrimaryTypeWithArraySuffix())
	}
	return &ast.IntersectionType{Base: ast.Base{Span: p.spanFrom(start)}, Types: types}
}

func (p *Parser) parsePrimaryTypeWithArraySuffix() ast.TypeExpr {
	start := p.curSpan()
	primary := p.parsePrimaryType()
	for p.peekIs(token.LBRACKET) {
		p.nextToken()
		arr := &ast.ArrayType{Base: ast.Base{Span: p.spanFrom(start)}, Element: primary}
		if p.peekIs(token.INT) {
			p.nextToken()
			n, _ := strconv.Atoi(p.curToken.Lexeme)
			arr.Fixed = true
			arr.Size = n
		}
		if !p.expectPeek(token.RBRACKET) {
			return arr
		}
		primary = arr
	}
	return primary
}

func (p *Parser) parsePrimaryType() ast.TypeExpr {
	start := p.curSpan()

	switch {
	case p.curIsLexeme("this"):
		return &ast.ThisType{Base: ast.Base{Span: start}}
	case p.curIsLexeme("typeOf"):
		p.nextToken()
		expr := p.parseExpression(Lowest)
		return &ast.TypeQuery{Base: ast.Base{Span: p.spanFrom(start)}, Expr: expr}
	}

	switch p.curToken.Type {
	case token.BUILTIN_TYPE:
		return &ast.PredefinedType{Base: ast.Base{Span: start}, Kind: p.curToken.Lexeme}
	case token.RESERVED:
		if predefinedTypeNames[p.curToken.Lexeme] {
			return &ast.PredefinedType{Base: ast.Base{Span: start}, Kind: p.curToken.Lexeme}
		}
	case token.STRING:
		return &ast.StringLiteralType{Base: ast.Base{Span: start}, Value: p.curToken.Literal.(string)}
	case token.LPAREN:
		p.nextToken()
		inner := p.parseType()
		p.expectPeek(token.RPAREN)
		return &ast.ParenthesizedType{Base: ast.Base{Span: p.spanFrom(start)}, Inner: inner}
	case token.LBRACKET:
		return p.parseTupleType()
	case token.LBRACE:
		return p.parseObjectType()
	case token.IDENT:
		ref := &ast.TypeReference{Base: ast.Base{Span: start}, Name: p.curToken.Lexeme}
		if p.peekIs(token.LT) {
			p.nextToken()
			p.nextToken()
			ref.Args = append(ref.Args, p.parseType())
			for p.peekIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				ref.Args = append(ref.Args, p.parseType())
			}
			p.expectPeek(token.GT)
		}
		return ref
	}

	p.errorf("expected a type, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
	return &ast.PredefinedType{Base: ast.Base{Span: start}, Kind: "any"}
}

func (p *Parser) parseTupleType() ast.TypeExpr {
	start := p.curSpan()
	tup := &ast.TupleType{}
	if p.peekIs(token.RBRACKET) {
		p.nextToken()
		tup.Span = p.spanFrom(start)
		return tup
	}
	p.nextToken()
	tup.Elements = append(tup.Elements, p.parseType())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		tup.Elements = append(tup.Elements, p.parseType())
	}
	p.expectPeek(token.RBRACKET)
	tup.Span = p.spanFrom(start)
	return tup
}

func (p *Parser) parseObjectType() ast.TypeExpr {
	start := p.curSpan()
	obj := &ast.ObjectType{}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		obj.Members = append(obj.Members, p.parseTypeMember())
		if p.curIs(token.COMMA) || p.curIs(token.SEMICOLON) {
			p.nextToken()
		}
	}
	obj.Span = p.spanFrom(start)
	return obj
}

// parseTypeMember parses one interface/object-type member. Call, Construct,
// and Index signatures are distinguished by a leading `(`, `new`, or `[`;
// everything else is a Property or Method signature.
func (p *Parser) parseTypeMember() ast.TypeMember {
	if p.curIs(token.LPAREN) {
		p.nextToken()
		params := p.parseParamList()
		p.expectPeek(token.RPAREN)
		var ret ast.TypeExpr
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			ret = p.parseType()
		}
		return ast.TypeMember{Kind: ast.CallMember, Params: params, Type: ret}
	}
	if p.curIsLexeme("new") {
		p.nextToken()
		p.expectPeek(token.LPAREN)
		params := p.parseParamList()
		p.expectPeek(token.RPAREN)
		var ret ast.TypeExpr
		if p.peekIs(token.COLON) {
			p.nextToken()
			p.nextToken()
			ret = p.parseType()
		}
		return ast.TypeMember{Kind: ast.ConstructMember, Params: params, Type: ret}
	}
	if p.curIs(token.LBRACKET) {
		p.nextToken()
		p.expectPeek(token.IDENT)
		p.expectPeek(token.COLON)
		p.nextToken()
		keyType := p.parseType()
		p.expectPeek(token.RBRACKET)
		p.expectPeek(token.COLON)
		p.nextToken()
		valType := p.parseType()
		return ast.TypeMember{Kind: ast.IndexMember, Params: []ast.Param{{Type: keyType}}, Type: valType}
	}

	name := ast.PropertyName{Literal: p.curToken.Lexeme}
	member := ast.TypeMember{Kind: ast.PropertyMember, Name: name}
	if p.peekIs(token.QUESTION) {
		member.Optional = true
		p.nextToken()
	}
	if p.peekIs(token.LPAREN) {
		member.Kind = ast.MethodMemberSig
		p.nextToken()
		member.Params = p.parseParamList()
		p.expectPeek(token.RPAREN)
	}
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		member.Type = p.parseType()
	}
	return member
}
