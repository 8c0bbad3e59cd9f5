package evaluator

import "github.com/lumen-lang/lumen/internal/ast"

// IsTypeOf is the structural type predicate: intentionally lax, since
// any/symbol/void and a bare TypeReference accept anything and the
// system performs no nominal checking.
func IsTypeOf(v Value, t ast.TypeExpr, ev *Evaluator) bool {
	if t == nil {
		return true
	}
	switch typ := t.(type) {
	case *ast.PredefinedType:
		return isPredefinedTypeOf(v, typ.Kind)
	case *ast.StringLiteralType:
		s, ok := v.(String)
		return ok && s.Value == typ.Value
	case *ast.UnionType:
		for _, sub := range typ.Types {
			if IsTypeOf(v, sub, ev) {
				return true
			}
		}
		return false
	case *ast.IntersectionType:
		for _, sub := range typ.Types {
			if !IsTypeOf(v, sub, ev) {
				return false
			}
		}
		return true
	case *ast.ParenthesizedType:
		return IsTypeOf(v, typ.Inner, ev)
	case *ast.ArrayType:
		arr, ok := v.(Array)
		if !ok {
			return false
		}
		if typ.Fixed && len(arr.Elements) != typ.Size {
			return false
		}
		for _, el := range arr.Elements {
			if !IsTypeOf(el, typ.Element, ev) {
				return false
			}
		}
		return true
	case *ast.TupleType:
		arr, ok := v.(Array)
		if !ok || len(arr.Elements) != len(typ.Elements) {
			return false
		}
		for i, el := range arr.Elements {
			if !IsTypeOf(el, typ.Elements[i], ev) {
				return false
			}
		}
		return true
	case *ast.ObjectType:
		_, ok := v.(*ObjectVal)
		return ok
	case *ast.FunctionType:
		af, ok := v.(*ArrowFunction)
		if !ok {
			return false
		}
		if len(af.Params) != len(typ.Params) {
			return false
		}
		for i, p := range typ.Params {
			if p.Type != nil && af.Params[i].Type != nil && !typeExprEqual(p.Type, af.Params[i].Type) {
				return false
			}
		}
		if typ.Return != nil && af.ReturnType != nil && !typeExprEqual(typ.Return, af.ReturnType) {
			return false
		}
		return true
	case *ast.ThisType:
		return true
	case *ast.TypeReference:
		return true
	case *ast.TypeQuery, *ast.ConstructorType:
		return true
	default:
		return true
	}
}

func isPredefinedTypeOf(v Value, kind string) bool {
	switch kind {
	case "any", "symbol", "void":
		return true
	case "number":
		_, ok := v.(Number)
		return ok
	case "float":
		_, ok := v.(Float)
		return ok
	case "boolean":
		_, ok := v.(Boolean)
		return ok
	case "string":
		_, ok := v.(String)
		return ok
	case "null":
		_, ok := v.(Null)
		return ok
	default:
		return true
	}
}

// typeExprEqual is a shallow structural comparison used only to compare
// function-type parameter/return shapes; it is not a full type equality
// relation, matching IsTypeOf's own lax intent.
func typeExprEqual(a, b ast.TypeExpr) bool {
	ap, aok := a.(*ast.PredefinedType)
	bp, bok := b.(*ast.PredefinedType)
	if aok && bok {
		return ap.Kind == bp.Kind
	}
	ar, aok := a.(*ast.TypeReference)
	br, bok := b.(*ast.TypeReference)
	if aok && bok {
		return ar.Name == br.Name
	}
	return true
}
