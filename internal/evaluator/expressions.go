package evaluator

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/token"
)

func (ev *Evaluator) evalExpression(expr ast.Expression, scope []string) Value {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return Number{Value: e.Value}
	case *ast.FloatLiteral:
		return Float{Value: e.Value}
	case *ast.StringLiteral:
		return String{Value: e.Value}
	case *ast.BooleanLiteral:
		return Boolean{Value: e.Value}
	case *ast.NullLiteral:
		return Null{}
	case *ast.Identifier:
		return Reference{Path: []Value{String{Value: e.Name}}, Scope: scope}
	case *ast.ThisExpression:
		return Reference{Path: []Value{String{Value: "this"}}, Scope: scope}
	case *ast.ArrayExpression:
		return ev.evalArrayExpression(e, scope)
	case *ast.BlockExpression:
		return ev.evalBlock(e, pushScope(scope, "closure"))
	case *ast.ArrowFunctionExpression:
		return &ArrowFunction{Params: e.Params, ReturnType: e.ReturnType, Body: e.Body, Closure: scope, Async: e.Async}
	case *ast.BinaryExpression:
		return ev.evalBinaryExpression(e, scope)
	case *ast.IndexExpression:
		return ev.evalIndexExpression(e, scope)
	case *ast.MatchExpression:
		return ev.evalMatchExpression(e, scope)
	case *ast.CallExpression:
		return ev.evalCallExpression(e, scope)
	case *ast.NewExpression:
		return ev.evalNewExpression(e, scope)
	default:
		return NewError(expr.Pos(), diagnostics.Implementing, "unsupported expression %T", expr)
	}
}

func (ev *Evaluator) evalArrayExpression(e *ast.ArrayExpression, scope []string) Value {
	elements := make([]Value, 0, len(e.Elements))
	for _, el := range e.Elements {
		v := ev.evalExpression(el, scope)
		if IsError(v) {
			return v
		}
		elements = append(elements, ev.resolve(v, scope))
	}
	size := ArraySize{Fixed: !e.IsDynamic, N: len(elements)}
	return Array{Elements: elements, Size: size}
}

// indexInto reads a single already-resolved base value at an
// already-evaluated key.
func (ev *Evaluator) indexInto(base Value, key Value) Value {
	switch b := base.(type) {
	case Array:
		if n, ok := key.(Number); ok {
			i := int(n.Value)
			if i < 0 || i >= len(b.Elements) {
				return None{}
			}
			return b.Elements[i]
		}
		if s, ok := key.(String); ok && s.Value == "push" {
			return NewError(diagnostics.Span{}, diagnostics.Implementing, "array.push is not implemented")
		}
		return NewError(diagnostics.Span{}, diagnostics.Type, "array index must be a number")
	case *ObjectVal:
		if s, ok := key.(String); ok {
			if v, ok := b.Entries[s.Value]; ok {
				return v
			}
			return None{}
		}
		return NewError(diagnostics.Span{}, diagnostics.Type, "object key must be a string")
	case String:
		return ev.indexIntoString(b, key)
	case Enum:
		if s, ok := key.(String); ok {
			if v, ok := b.Values[s.Value]; ok {
				return v
			}
			return NewError(diagnostics.Span{}, diagnostics.Reference, "enum %s has no member %q", b.Name, s.Value)
		}
		return NewError(diagnostics.Span{}, diagnostics.Type, "enum key must be a string")
	case ClassInstance:
		if s, ok := key.(String); ok {
			v, ok := ev.Env.Get(s.Value, b.Scope)
			if !ok {
				return NewError(diagnostics.Span{}, diagnostics.Reference, "%s has no field %q", b.Name, s.Value)
			}
			return v
		}
		return NewError(diagnostics.Span{}, diagnostics.Type, "instance field key must be a string")
	case Null:
		return NewError(diagnostics.Span{}, diagnostics.Reference, "cannot index null")
	default:
		return NewError(diagnostics.Span{}, diagnostics.Type, "value of kind %s is not indexable", base.Kind())
	}
}

func (ev *Evaluator) indexIntoString(s String, key Value) Value {
	switch k := key.(type) {
	case Number:
		i := int(k.Value)
		if i < 0 || i >= len(s.Value) {
			return None{}
		}
		return String{Value: string(s.Value[i])}
	case String:
		switch k.Value {
		case "length":
			return Number{Value: int64(len(s.Value))}
		case "startsWith":
			return NativeFunction{Name: "startsWith", Fn: func(args *FArguments) Value {
				prefix := args.GetString(0)
				return Boolean{Value: strings.HasPrefix(s.Value, prefix)}
			}}
		case "split":
			return NativeFunction{Name: "split", Fn: func(args *FArguments) Value {
				sep := args.GetString(0)
				parts := strings.Split(s.Value, sep)
				elems := make([]Value, len(parts))
				for i, p := range parts {
					elems[i] = String{Value: p}
				}
				return Array{Elements: elems, Size: ArraySize{Fixed: false}}
			}}
		default:
			return None{}
		}
	default:
		return NewError(diagnostics.Span{}, diagnostics.Type, "string index must be a number or string")
	}
}

// evalIndexExpression extends a referenceable base by one path segment
// rather than eagerly dereferencing it, so that `a[i]` and `a.b` can serve
// as assignment targets (the '=' operator resolves the result itself).
// A base that isn't itself a Reference (e.g. an array literal) has no
// assignable location, so it is read through immediately.
func (ev *Evaluator) evalIndexExpression(e *ast.IndexExpression, scope []string) Value {
	obj := ev.evalExpression(e.Object, scope)
	if IsError(obj) {
		return obj
	}
	key := ev.evalExpression(e.Index, scope)
	if IsError(key) {
		return key
	}
	key = ev.resolve(key, scope)
	if IsError(key) {
		return key
	}
	if ref, ok := obj.(Reference); ok {
		path := make([]Value, len(ref.Path)+1)
		copy(path, ref.Path)
		path[len(ref.Path)] = key
		return Reference{Path: path, Scope: ref.Scope}
	}
	base := ev.resolve(obj, scope)
	if IsError(base) {
		return base
	}
	return ev.indexInto(base, key)
}

func (ev *Evaluator) evalMatchExpression(e *ast.MatchExpression, scope []string) Value {
	scrutinee := ev.evalExpression(e.Scrutinee, scope)
	if IsError(scrutinee) {
		return scrutinee
	}
	scrutinee = ev.resolve(scrutinee, scope)
	for _, arm := range e.Arms {
		if arm.Value == nil {
			return ev.evalStatement(arm.Body, scope)
		}
		armVal := ev.evalExpression(arm.Value, scope)
		if IsError(armVal) {
			return armVal
		}
		if structuralEqual(scrutinee, ev.resolve(armVal, scope)) {
			return ev.evalStatement(arm.Body, scope)
		}
	}
	return None{}
}

func structuralEqual(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case Float:
		bv, ok := b.(Float)
		return ok && av.Value == bv.Value
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Null:
		_, ok := b.(Null)
		return ok
	case None:
		_, ok := b.(None)
		return ok
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !structuralEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func (ev *Evaluator) evalBinaryExpression(e *ast.BinaryExpression, scope []string) Value {
	switch e.Operator {
	case token.ASSIGN:
		return ev.evalAssign(e, scope)
	case token.INCREMENT, token.DECREMENT:
		return ev.evalIncDec(e, scope)
	case token.BANG:
		return ev.evalNot(e, scope)
	}

	left := ev.evalExpression(e.Left, scope)
	if IsError(left) {
		return left
	}
	left = ev.resolve(left, scope)
	if IsError(left) {
		return left
	}
	right := ev.evalExpression(e.Right, scope)
	if IsError(right) {
		return right
	}
	right = ev.resolve(right, scope)
	if IsError(right) {
		return right
	}

	switch e.Operator {
	case token.EQ:
		return Boolean{Value: structuralEqual(left, right)}
	case token.NOT_EQ:
		return Boolean{Value: !structuralEqual(left, right)}
	case token.LT, token.LTE, token.GT, token.GTE:
		return ev.evalComparison(e.Operator, left, right, e.Pos())
	case token.PLUS:
		return ev.evalPlus(left, right, e.Pos())
	case token.MINUS:
		return ev.evalArith(e.Operator, left, right, e.Pos())
	case token.ASTERISK:
		return ev.evalStar(left, right, e.Pos())
	case token.SLASH:
		return ev.evalArith(e.Operator, left, right, e.Pos())
	case token.AND:
		return Boolean{Value: Truthy(left) && Truthy(right)}
	case token.OR:
		return Boolean{Value: Truthy(left) || Truthy(right)}
	default:
		return NewError(e.Pos(), diagnostics.Implementing, "unsupported operator %s", e.Operator)
	}
}

func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Number:
		return float64(n.Value), true
	case Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// evalComparison implements the mathematical (non-inverted) comparison
// mapping: `>` is strict, `>=` is inclusive.
func (ev *Evaluator) evalComparison(op token.Type, left, right Value, span diagnostics.Span) Value {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return NewError(span, diagnostics.Type, "comparison requires numeric operands")
	}
	switch op {
	case token.LT:
		return Boolean{Value: lf < rf}
	case token.LTE:
		return Boolean{Value: lf <= rf}
	case token.GT:
		return Boolean{Value: lf > rf}
	case token.GTE:
		return Boolean{Value: lf >= rf}
	}
	return NewError(span, diagnostics.Type, "unreachable comparison operator")
}

// evalPlus additionally concatenates strings when either operand is one.
func (ev *Evaluator) evalPlus(left, right Value, span diagnostics.Span) Value {
	if ls, ok := left.(String); ok {
		return String{Value: ls.Value + stringify(right)}
	}
	if rs, ok := right.(String); ok {
		return String{Value: stringify(left) + rs.Value}
	}
	return ev.evalArith(token.PLUS, left, right, span)
}

// evalStar additionally repeats a string by a count when one operand is
// a string and the other a number.
func (ev *Evaluator) evalStar(left, right Value, span diagnostics.Span) Value {
	if ls, ok := left.(String); ok {
		if rn, ok := right.(Number); ok {
			return String{Value: strings.Repeat(ls.Value, int(rn.Value))}
		}
	}
	return ev.evalArith(token.ASTERISK, left, right, span)
}

func (ev *Evaluator) evalArith(op token.Type, left, right Value, span diagnostics.Span) Value {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if lok && rok {
		switch op {
		case token.PLUS:
			return Number{Value: ln.Value + rn.Value}
		case token.MINUS:
			return Number{Value: ln.Value - rn.Value}
		case token.ASTERISK:
			return Number{Value: ln.Value * rn.Value}
		case token.SLASH:
			if rn.Value == 0 {
				return NewError(span, diagnostics.Type, "division by zero")
			}
			return Number{Value: ln.Value / rn.Value}
		}
	}
	lf, lok2 := asFloat(left)
	rf, rok2 := asFloat(right)
	if lok2 && rok2 {
		switch op {
		case token.PLUS:
			return Float{Value: lf + rf}
		case token.MINUS:
			return Float{Value: lf - rf}
		case token.ASTERISK:
			return Float{Value: lf * rf}
		case token.SLASH:
			return Float{Value: lf / rf}
		}
	}
	return NewError(span, diagnostics.Type, "operator %s not defined for these operand types", op)
}

func stringify(v Value) string {
	if s, ok := v.(String); ok {
		return s.Value
	}
	return v.Inspect()
}

// evalAssign implements `Reference = value`; any other LHS fails with
// a Type error.
func (ev *Evaluator) evalAssign(e *ast.BinaryExpression, scope []string) Value {
	lhs := ev.evalExpression(e.Left, scope)
	if IsError(lhs) {
		return lhs
	}
	ref, ok := lhs.(Reference)
	if !ok {
		return NewError(e.Pos(), diagnostics.Type, "left-hand side of = must be a reference")
	}
	rhs := ev.evalExpression(e.Right, scope)
	if IsError(rhs) {
		return rhs
	}
	rhs = ev.resolve(rhs, scope)
	if IsError(rhs) {
		return rhs
	}

	if len(ref.Path) > 0 {
		if head, ok := ref.Path[0].(String); ok {
			if existing, ok := ev.Env.Get(head.Value, ref.Scope); ok && len(ref.Path) == 1 {
				if prevFn, ok := existing.(*Function); ok {
					if newFn, ok := rhs.(*Function); ok {
						prevFn.Overloads = append(prevFn.Overloads, newFn)
						return rhs
					}
					return NewError(e.Pos(), diagnostics.Type, "cannot assign a non-function over function %q", head.Value)
				}
			}
		}
	}

	path := make([]string, len(ref.Path))
	for i, seg := range ref.Path {
		if s, ok := seg.(String); ok {
			path[i] = s.Value
		} else {
			path[i] = seg.Inspect()
		}
	}
	ev.Env.Set(path, ref.Scope, rhs)
	return rhs
}

func (ev *Evaluator) evalIncDec(e *ast.BinaryExpression, scope []string) Value {
	operand := e.Left
	if operand == nil {
		operand = e.Right
	}
	ref := ev.evalExpression(operand, scope)
	if IsError(ref) {
		return ref
	}
	r, ok := ref.(Reference)
	if !ok {
		return NewError(e.Pos(), diagnostics.Type, "++/-- requires a reference operand")
	}
	cur := ev.resolve(r, scope)
	if IsError(cur) {
		return cur
	}
	n, ok := cur.(Number)
	if !ok {
		return NewError(e.Pos(), diagnostics.Type, "++/-- requires a numeric variable")
	}
	delta := int64(1)
	if e.Operator == token.DECREMENT {
		delta = -1
	}
	updated := Number{Value: n.Value + delta}

	path := make([]string, len(r.Path))
	for i, seg := range r.Path {
		path[i] = seg.(String).Value
	}
	ev.Env.Set(path, r.Scope, updated)

	if e.Right == nil {
		// postfix: value of expression is the pre-increment value
		return n
	}
	return updated
}

func (ev *Evaluator) evalNot(e *ast.BinaryExpression, scope []string) Value {
	v := ev.evalExpression(e.Right, scope)
	if IsError(v) {
		return v
	}
	v = ev.resolve(v, scope)
	if IsError(v) {
		return v
	}
	b, ok := v.(Boolean)
	if !ok {
		return NewError(e.Pos(), diagnostics.Type, "! requires a boolean operand")
	}
	return Boolean{Value: !b.Value}
}
