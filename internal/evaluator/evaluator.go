package evaluator

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/modules"
)

// Evaluator is a single-threaded recursive tree walker. It owns one
// Environment and a module registry supplied by the host before Eval
// runs.
type Evaluator struct {
	Env             *Environment
	Modules         *modules.Registry
	rootScope       []string
	instanceCounter int
}

func New(modules *modules.Registry) *Evaluator {
	return &Evaluator{
		Env:       NewEnvironment(),
		Modules:   modules,
		rootScope: []string{"root"},
	}
}

// EvalProgram evaluates every top-level statement in order and returns the
// value of the last one (or the first Error/ReturnValue encountered).
func (ev *Evaluator) EvalProgram(prog *ast.Program) Value {
	var result Value = None{}
	for _, stmt := range prog.Statements {
		result = ev.evalStatement(stmt, ev.rootScope)
		if IsError(result) {
			return result
		}
		if rv, ok := result.(ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}

func pushScope(scope []string, frame string) []string {
	next := make([]string, len(scope)+1)
	copy(next, scope)
	next[len(scope)] = frame
	return next
}

// evalBlock evaluates statements sequentially, stopping at the first Error
// or ReturnValue, then pops the block's own scope frame on every exit
// path.
func (ev *Evaluator) evalBlock(block *ast.BlockExpression, scope []string) Value {
	defer ev.Env.RemoveByScope(scope)

	var result Value = None{}
	for _, stmt := range block.Statements {
		result = ev.evalStatement(stmt, scope)
		if IsError(result) {
			return result
		}
		if _, ok := result.(ReturnValue); ok {
			return result
		}
	}
	return result
}

func (ev *Evaluator) evalStatement(stmt ast.Statement, scope []string) Value {
	switch s := stmt.(type) {
	case *ast.ImportStatement:
		return ev.evalImport(s, scope)
	case *ast.ExportStatement:
		return ev.evalStatement(s.Decl, scope)
	case *ast.TypeAliasStatement:
		ev.Env.Bind(s.Name, scope, TypeAliasValue{Name: s.Name, Type: s.Type})
		return None{}
	case *ast.InterfaceStatement:
		ev.Env.Bind(s.Name, scope, Interface{Name: s.Name, Extends: s.Extends, Signatures: s.Members})
		return None{}
	case *ast.FunctionStatement:
		return ev.evalFunctionStatement(s, scope)
	case *ast.EnumStatement:
		return ev.evalEnumStatement(s, scope)
	case *ast.ClassStatement:
		return ev.evalClassStatement(s, scope)
	case *ast.VariableStatement:
		return ev.evalVariableStatement(s, scope)
	case *ast.IfStatement:
		return ev.evalIfStatement(s, scope)
	case *ast.ReturnStatement:
		var v Value = None{}
		if s.Value != nil {
			v = ev.evalExpression(s.Value, scope)
			if IsError(v) {
				return v
			}
		}
		return ReturnValue{Value: v}
	case *ast.ExpressionStatement:
		return ev.evalExpression(s.Expr, scope)
	default:
		return NewError(stmt.Pos(), diagnostics.Implementing, "unsupported statement %T", stmt)
	}
}

func (ev *Evaluator) evalImport(s *ast.ImportStatement, scope []string) Value {
	mod, ok := ev.Modules.Lookup(s.Module)
	if !ok {
		return NewError(s.Pos(), diagnostics.Reference, "unknown module %q", s.Module)
	}
	if s.NamespaceAs != "" {
		ns := NewObjectVal()
		for _, exp := range mod.Exports {
			v, _ := exp.Value.(Value)
			ns.Set(exp.Name, v)
		}
		ev.Env.Bind(s.NamespaceAs, scope, ns)
		return None{}
	}
	for _, spec := range s.Specifiers {
		raw, ok := mod.Lookup(spec.Name)
		if !ok {
			return NewError(s.Pos(), diagnostics.Reference, "module %q has no export %q", s.Module, spec.Name)
		}
		v, _ := raw.(Value)
		ev.Env.Bind(spec.Alias, scope, v)
	}
	return None{}
}

func (ev *Evaluator) evalFunctionStatement(s *ast.FunctionStatement, scope []string) Value {
	fn := &Function{Name: s.Name, Modifiers: s.Modifiers, Params: s.Params, ReturnType: s.ReturnType, Body: s.Body}
	if existing, ok := ev.Env.Get(s.Name, scope); ok {
		if prev, ok := existing.(*Function); ok {
			prev.Overloads = append(prev.Overloads, fn)
			return None{}
		}
		return NewError(s.Pos(), diagnostics.Type, "cannot redeclare %q as a function overload", s.Name)
	}
	ev.Env.Bind(s.Name, scope, fn)
	return None{}
}

// evalEnumStatement binds each member's initializer when present; a member
// without one takes its declaration-position index (`C` in `enum E { A, B
// = 10, C }` is `2`, its position, not `B`'s value + 1).
func (ev *Evaluator) evalEnumStatement(s *ast.EnumStatement, scope []string) Value {
	values := map[string]Value{}
	for i, m := range s.Members {
		if m.Initializer != nil {
			v := ev.evalExpression(m.Initializer, scope)
			if IsError(v) {
				return v
			}
			values[m.Name] = ev.resolve(v, scope)
		} else {
			values[m.Name] = Number{Value: int64(i)}
		}
	}
	ev.Env.Bind(s.Name, scope, Enum{Name: s.Name, Members: s.Members, Values: values})
	return None{}
}

func (ev *Evaluator) evalClassStatement(s *ast.ClassStatement, scope []string) Value {
	class := &Class{Name: s.Name, Extends: s.Extends, Implements: s.Implements, Methods: map[string]*ast.ClassMember{}}
	for i := range s.Members {
		m := &s.Members[i]
		switch m.Kind {
		case ast.ConstructorMember:
			class.Ctors = append(class.Ctors, Constructor{Params: m.Params, Body: m.Body})
		case ast.FieldMember:
			class.Fields = append(class.Fields, *m)
		default:
			class.Methods[m.Name] = m
		}
	}
	ev.Env.Bind(s.Name, scope, class)
	return None{}
}

func (ev *Evaluator) evalVariableStatement(s *ast.VariableStatement, scope []string) Value {
	for _, d := range s.Declarators {
		if d.Initializer == nil {
			if d.Type == nil {
				return NewError(s.Pos(), diagnostics.Type, "declaration of %q requires an initializer or type annotation", d.Name)
			}
			return NewError(s.Pos(), diagnostics.Type, "non-nullable declaration of %q has no initializer", d.Name)
		}
		v := ev.evalExpression(d.Initializer, scope)
		if IsError(v) {
			return v
		}
		v = ev.resolve(v, scope)
		if d.Type != nil && !IsTypeOf(v, d.Type, ev) {
			return NewError(s.Pos(), diagnostics.Type, "initializer for %q does not match declared type", d.Name)
		}
		ev.Env.Bind(d.Name, scope, v)
	}
	return None{}
}

// evalIfStatement evaluates the condition and branches on it.
func (ev *Evaluator) evalIfStatement(s *ast.IfStatement, scope []string) Value {
	cond := ev.evalExpression(s.Condition, scope)
	if IsError(cond) {
		return cond
	}
	if Truthy(ev.resolve(cond, scope)) {
		return ev.evalStatement(s.Then, scope)
	}
	if s.Else != nil {
		return ev.evalStatement(s.Else, scope)
	}
	return None{}
}

// resolve turns a Reference into its concrete value; every other Value
// passes through unchanged. A reference must be resolved to a concrete
// value before being used as an R-value.
func (ev *Evaluator) resolve(v Value, scope []string) Value {
	ref, ok := v.(Reference)
	if !ok {
		return v
	}
	if len(ref.Path) == 0 {
		return NewError(diagnostics.Span{}, diagnostics.Reference, "empty reference")
	}
	head, ok := ref.Path[0].(String)
	if !ok {
		return NewError(diagnostics.Span{}, diagnostics.Reference, "malformed reference head")
	}
	val, ok := ev.Env.Get(head.Value, ref.Scope)
	if !ok {
		return NewError(diagnostics.Span{}, diagnostics.Reference, "undefined variable %q", head.Value)
	}
	cur := val
	for _, seg := range ref.Path[1:] {
		cur = ev.indexInto(cur, seg)
		if IsError(cur) {
			return cur
		}
	}
	if nested, ok := cur.(Reference); ok {
		return ev.resolve(nested, scope)
	}
	return cur
}
