// Package evaluator implements the tree-walking interpreter: the value
// lattice (this file), the flat scope-prefix Environment, and the Eval
// dispatch, built on a Value-interface-plus-type-switch idiom over this
// grammar's own number/float/boolean/string/array/object/class/enum value
// lattice.
package evaluator

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
)

type Kind string

const (
	NumberKind    Kind = "Number"
	FloatKind     Kind = "Float"
	BooleanKind   Kind = "Boolean"
	StringKind    Kind = "String"
	ArrayKind     Kind = "Array"
	ObjectKind    Kind = "Object"
	NullKind      Kind = "Null"
	NoneKind      Kind = "None"
	ReturnKind    Kind = "ReturnValue"
	ReferenceKind Kind = "Reference"
	ArrowKind     Kind = "ArrowFunction"
	FunctionKind  Kind = "Function"
	NativeKind    Kind = "NativeFunction"
	ClassKind     Kind = "Class"
	InstanceKind  Kind = "ClassInstance"
	EnumKind      Kind = "Enum"
	InterfaceKind Kind = "Interface"
	TypeAliasKind Kind = "TypeAlias"
	ErrorKind     Kind = "Error"
)

// Value is the sum type every evaluation step produces.
type Value interface {
	Kind() Kind
	Inspect() string
}

type Number struct{ Value int64 }

func (Number) Kind() Kind        { return NumberKind }
func (n Number) Inspect() string { return fmt.Sprintf("%d", n.Value) }

type Float struct{ Value float64 }

func (Float) Kind() Kind        { return FloatKind }
func (f Float) Inspect() string { return fmt.Sprintf("%g", f.Value) }

type Boolean struct{ Value bool }

func (Boolean) Kind() Kind        { return BooleanKind }
func (b Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

type String struct{ Value string }

func (String) Kind() Kind        { return StringKind }
func (s String) Inspect() string { return s.Value }

// ArraySize is Fixed(n) or Dynamic: Array(elements, Fixed(n)|Dynamic).
type ArraySize struct {
	Fixed bool
	N     int
}

type Array struct {
	Elements []Value
	Size     ArraySize
}

func (Array) Kind() Kind { return ArrayKind }
func (a Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectVal is the Object value. Object literals and indices use string
// keys, so entries are keyed by the key's text (map[string]Value).
type ObjectVal struct {
	Entries map[string]Value
	// Order preserves declaration order for deterministic Inspect/iteration.
	Order []string
}

func NewObjectVal() *ObjectVal {
	return &ObjectVal{Entries: map[string]Value{}}
}

func (o *ObjectVal) Set(key string, v Value) {
	if _, ok := o.Entries[key]; !ok {
		o.Order = append(o.Order, key)
	}
	o.Entries[key] = v
}

func (*ObjectVal) Kind() Kind { return ObjectKind }
func (o *ObjectVal) Inspect() string {
	parts := make([]string, 0, len(o.Order))
	for _, k := range o.Order {
		parts = append(parts, fmt.Sprintf("%s: %s", k, o.Entries[k].Inspect()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type Null struct{}

func (Null) Kind() Kind      { return NullKind }
func (Null) Inspect() string { return "null" }

// None is the "absent" sentinel for missed index/enum lookups (distinct
// from Null, which is a source-level literal).
type None struct{}

func (None) Kind() Kind      { return NoneKind }
func (None) Inspect() string { return "none" }

type ReturnValue struct{ Value Value }

func (ReturnValue) Kind() Kind        { return ReturnKind }
func (r ReturnValue) Inspect() string { return r.Value.Inspect() }

// Reference is an unresolved L-value: path[0] names a variable in Scope;
// subsequent path elements index into it.
type Reference struct {
	Path  []Value
	Scope []string
}

func (Reference) Kind() Kind { return ReferenceKind }
func (r Reference) Inspect() string {
	parts := make([]string, len(r.Path))
	for i, p := range r.Path {
		parts[i] = p.Inspect()
	}
	return "ref(" + strings.Join(parts, ".") + ")"
}

type ArrowFunction struct {
	Params     []ast.Param
	ReturnType ast.TypeExpr
	Body       ast.Expression // *ast.BlockExpression or a single expression
	Closure    []string       // captured scope at definition time
	Async      bool
}

func (ArrowFunction) Kind() Kind      { return ArrowKind }
func (ArrowFunction) Inspect() string { return "<arrow function>" }

// Function carries its primary declaration plus same-name overloads
// accumulated as later declarations with the same name are seen.
type Function struct {
	Name       string
	Modifiers  []string
	Params     []ast.Param
	ReturnType ast.TypeExpr
	Body       *ast.BlockExpression
	Overloads  []*Function
}

func (Function) Kind() Kind        { return FunctionKind }
func (f Function) Inspect() string { return fmt.Sprintf("<function %s>", f.Name) }

// NativeFunction wraps a host-provided Go function exposed to scripts
// through the FArguments contract.
type NativeFunction struct {
	Name string
	Fn   func(args *FArguments) Value
}

func (NativeFunction) Kind() Kind        { return NativeKind }
func (n NativeFunction) Inspect() string { return fmt.Sprintf("<native function %s>", n.Name) }

type Constructor struct {
	Params []ast.Param
	Body   *ast.BlockExpression
}

type Class struct {
	Name       string
	Extends    string
	Implements []string
	Ctors      []Constructor
	Fields     []ast.ClassMember
	Methods    map[string]*ast.ClassMember
}

func (Class) Kind() Kind        { return ClassKind }
func (c Class) Inspect() string { return fmt.Sprintf("<class %s>", c.Name) }

type ClassInstance struct {
	Name  string
	Class *Class
	Scope []string
}

func (ClassInstance) Kind() Kind        { return InstanceKind }
func (c ClassInstance) Inspect() string { return fmt.Sprintf("<%s instance>", c.Name) }

type Enum struct {
	Name    string
	Members []ast.EnumMember
	Values  map[string]Value
}

func (Enum) Kind() Kind        { return EnumKind }
func (e Enum) Inspect() string { return fmt.Sprintf("<enum %s>", e.Name) }

type Interface struct {
	Name       string
	Extends    []string
	Signatures []ast.TypeMember
}

func (Interface) Kind() Kind        { return InterfaceKind }
func (i Interface) Inspect() string { return fmt.Sprintf("<interface %s>", i.Name) }

type TypeAliasValue struct {
	Name string
	Type ast.TypeExpr
}

func (TypeAliasValue) Kind() Kind        { return TypeAliasKind }
func (t TypeAliasValue) Inspect() string { return fmt.Sprintf("<type %s>", t.Name) }

// ErrorValue is the terminal Error(span, code, message) variant, wrapping
// the shared diagnostics.Error so the same value renders through the
// external formatter without translation.
type ErrorValue struct {
	*diagnostics.Error
}

func (ErrorValue) Kind() Kind        { return ErrorKind }
func (e ErrorValue) Inspect() string { return e.Error.Error() }

func NewError(span diagnostics.Span, code diagnostics.Code, format string, args ...interface{}) ErrorValue {
	return ErrorValue{diagnostics.New(span, code, format, args...)}
}

func IsError(v Value) bool {
	_, ok := v.(ErrorValue)
	return ok
}

// Truthy implements the If-condition coercion: boolean true, a non-zero
// number, or a non-empty string.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case Boolean:
		return val.Value
	case Number:
		return val.Value != 0
	case Float:
		return val.Value != 0
	case String:
		return val.Value != ""
	default:
		return false
	}
}
