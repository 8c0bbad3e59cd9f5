// Package ast defines the positioned syntax tree the parser produces and
// the evaluator walks: a Node interface plus statementNode()/
// expressionNode()/typeNode() marker methods over this grammar's own
// class/enum/interface/match node set.
package ast

import (
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/token"
)

// Positioned wraps a value with the span it was parsed from. The parser's
// single external entry point returns Positioned[*Program].
type Positioned[T any] struct {
	Value T
	Span  diagnostics.Span
}

// Node is implemented by every statement, expression, and type node.
type Node interface {
	Pos() diagnostics.Span
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type TypeExpr interface {
	Node
	typeNode()
}

// Base carries the span every node has; embedding it implements Pos() once.
type Base struct {
	Span diagnostics.Span
}

func (b Base) Pos() diagnostics.Span { return b.Span }

// Program is an ordered sequence of top-level statements.
type Program struct {
	Base
	Statements []Statement
}

// ---- Parameters, property names, shared shapes ----

type Param struct {
	Name     string
	Type     TypeExpr
	Optional bool
	Default  Expression
	Rest     bool
}

// PropertyName is either a plain identifier/string name or a computed
// expression key (`[expr]: T`).
type PropertyName struct {
	Literal  string
	Computed Expression
}

func (p PropertyName) IsComputed() bool { return p.Computed != nil }

// ---- Statements ----

type ImportSpecifier struct {
	Name  string
	Alias string // equal to Name when no `as` clause is present
}

type ImportStatement struct {
	Base
	Specifiers  []ImportSpecifier // empty when NamespaceAs is set
	NamespaceAs string            // `import * as m from "..."`; empty otherwise
	Module      string
}

func (s *ImportStatement) statementNode() {}

type TypeAliasStatement struct {
	Base
	Name string
	Type TypeExpr
}

func (s *TypeAliasStatement) statementNode() {}

type TypeMemberKind int

const (
	PropertyMember TypeMemberKind = iota
	MethodMemberSig
	CallMember
	ConstructMember
	IndexMember
)

type TypeMember struct {
	Kind     TypeMemberKind
	Name     PropertyName // unset for Call/Construct/Index signatures
	Params   []Param      // set for Method/Call/Construct/Index
	Type     TypeExpr     // property type, or return type for the others
	Optional bool
}

type InterfaceStatement struct {
	Base
	Name    string
	Extends []string
	Members []TypeMember
}

func (s *InterfaceStatement) statementNode() {}

type FunctionStatement struct {
	Base
	Modifiers  []string
	Name       string
	Params     []Param
	ReturnType TypeExpr
	Body       *BlockExpression
}

func (s *FunctionStatement) statementNode() {}

type EnumMember struct {
	Name        string
	Initializer Expression // nil if the member has no explicit initializer
}

type EnumStatement struct {
	Base
	Name    string
	Members []EnumMember
}

func (s *EnumStatement) statementNode() {}

type ExportStatement struct {
	Base
	Decl Statement
}

func (s *ExportStatement) statementNode() {}

type ClassMemberKind int

const (
	FieldMember ClassMemberKind = iota
	MethodMember
	ConstructorMember
	GetterMember
	SetterMember
)

type ClassMember struct {
	Kind        ClassMemberKind
	Modifiers   []string
	Name        string
	Type        TypeExpr         // field type (FieldMember) or return type (method-like)
	Initializer Expression       // FieldMember default value, or nil
	Params      []Param          // ConstructorMember/MethodMember/GetterMember/SetterMember
	Body        *BlockExpression // ConstructorMember/MethodMember/GetterMember/SetterMember
	IsOperator  bool             // declared with the `operator` keyword instead of a plain name
}

type ClassStatement struct {
	Base
	Modifiers  []string
	Name       string
	Extends    string // empty when absent
	Implements []string
	Members    []ClassMember
}

func (s *ClassStatement) statementNode() {}

type VariableDeclarator struct {
	Name        string
	Type        TypeExpr // nil when unannotated
	Initializer Expression
}

type VariableStatement struct {
	Base
	Const       bool
	Declarators []VariableDeclarator
}

func (s *VariableStatement) statementNode() {}

type IfStatement struct {
	Base
	Condition Expression
	Then      Statement
	Else      Statement // nil when absent
}

func (s *IfStatement) statementNode() {}

type ReturnStatement struct {
	Base
	Value Expression // nil for a bare `return;`
}

func (s *ReturnStatement) statementNode() {}

type ExpressionStatement struct {
	Base
	Expr Expression
}

func (s *ExpressionStatement) statementNode() {}

// ---- Expressions ----

// BinaryExpression also encodes prefix `!` and postfix `++`/`--`: for a
// prefix unary op Left is nil, for a postfix unary op Right is nil, per
// the grammar's unary-as-binary-with-a-missing-side encoding.
type BinaryExpression struct {
	Base
	Operator token.Type
	Left     Expression
	Right    Expression
}

func (e *BinaryExpression) expressionNode() {}

type IndexExpression struct {
	Base
	Object Expression
	Index  Expression
}

func (e *IndexExpression) expressionNode() {}

type MatchArm struct {
	Value Expression // nil for a default arm
	Body  Statement
}

type MatchExpression struct {
	Base
	Scrutinee Expression
	Arms      []MatchArm
}

func (e *MatchExpression) expressionNode() {}

type CallExpression struct {
	Base
	Callee Expression
	Args   []Expression
	Lambda *ArrowFunctionExpression // trailing `{ ... }` block, lifted; nil otherwise
}

func (e *CallExpression) expressionNode() {}

type NewExpression struct {
	Base
	Callee Expression
	Args   []Expression
}

func (e *NewExpression) expressionNode() {}

type BlockExpression struct {
	Base
	Statements []Statement
}

func (e *BlockExpression) expressionNode() {}

type IntegerLiteral struct {
	Base
	Value int64
}

func (e *IntegerLiteral) expressionNode() {}

type FloatLiteral struct {
	Base
	Value float64
}

func (e *FloatLiteral) expressionNode() {}

type StringLiteral struct {
	Base
	Value string
}

func (e *StringLiteral) expressionNode() {}

type BooleanLiteral struct {
	Base
	Value bool
}

func (e *BooleanLiteral) expressionNode() {}

type NullLiteral struct{ Base }

func (e *NullLiteral) expressionNode() {}

type Identifier struct {
	Base
	Name string
}

func (e *Identifier) expressionNode() {}

type ArrayExpression struct {
	Base
	Elements  []Expression
	IsDynamic bool
}

func (e *ArrayExpression) expressionNode() {}

type ArrowFunctionExpression struct {
	Base
	Async      bool
	Params     []Param
	ReturnType TypeExpr
	Body       Expression // *BlockExpression or a single expression
}

func (e *ArrowFunctionExpression) expressionNode() {}

type ThisExpression struct{ Base }

func (e *ThisExpression) expressionNode() {}

// ---- Type expressions ----

type UnionType struct {
	Base
	Types []TypeExpr
}

func (t *UnionType) typeNode() {}

type IntersectionType struct {
	Base
	Types []TypeExpr
}

func (t *IntersectionType) typeNode() {}

type ParenthesizedType struct {
	Base
	Inner TypeExpr
}

func (t *ParenthesizedType) typeNode() {}

// PredefinedType is one of any|number|float|boolean|string|symbol|void|null.
type PredefinedType struct {
	Base
	Kind string
}

func (t *PredefinedType) typeNode() {}

type StringLiteralType struct {
	Base
	Value string
}

func (t *StringLiteralType) typeNode() {}

type TypeReference struct {
	Base
	Name string
	Args []TypeExpr
}

func (t *TypeReference) typeNode() {}

type ObjectType struct {
	Base
	Members []TypeMember
}

func (t *ObjectType) typeNode() {}

type ArrayType struct {
	Base
	Element TypeExpr
	Fixed   bool
	Size    int // meaningful only when Fixed
}

func (t *ArrayType) typeNode() {}

type TupleType struct {
	Base
	Elements []TypeExpr
}

func (t *TupleType) typeNode() {}

// TypeQuery is `typeOf expr`.
type TypeQuery struct {
	Base
	Expr Expression
}

func (t *TypeQuery) typeNode() {}

type ThisType struct{ Base }

func (t *ThisType) typeNode() {}

type FunctionType struct {
	Base
	Generics []string
	Params   []Param
	Return   TypeExpr
}

func (t *FunctionType) typeNode() {}

type ConstructorType struct {
	Base
	Generics []string
	Params   []Param
	Return   TypeExpr
}

func (t *ConstructorType) typeNode() {}
