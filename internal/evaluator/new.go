package evaluator

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
)

func (ev *Evaluator) nextInstanceScopeLabel(className string) string {
	ev.instanceCounter++
	return fmt.Sprintf("class-instance:%s#%d", className, ev.instanceCounter)
}

// evalNewExpression resolves the class, picks the first constructor whose
// required parameters fit the supplied arguments and whose supplied
// argument types structurally match, pushes the instance frame, seeds
// `this` with default field values, runs the constructor body, then
// verifies every non-nullable fieldless-initializer field was assigned.
func (ev *Evaluator) evalNewExpression(e *ast.NewExpression, scope []string) Value {
	calleeVal := ev.evalExpression(e.Callee, scope)
	if IsError(calleeVal) {
		return calleeVal
	}
	resolved := ev.resolve(calleeVal, scope)
	if IsError(resolved) {
		return resolved
	}
	class, ok := resolved.(*Class)
	if !ok {
		return NewError(e.Pos(), diagnostics.Type, "new requires a class")
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v := ev.evalExpression(a, scope)
		if IsError(v) {
			return v
		}
		args = append(args, ev.resolve(v, scope))
	}

	ctor := selectConstructor(class.Ctors, args, ev)
	if ctor == nil && len(class.Ctors) > 0 {
		return NewError(e.Pos(), diagnostics.Type, "no constructor of %q matches the supplied arguments", class.Name)
	}

	instanceScope := pushScope(scope, ev.nextInstanceScopeLabel(class.Name))
	ev.Env.Bind("this", instanceScope, ClassInstance{Name: class.Name, Class: class, Scope: instanceScope})

	// Seed `this` with default-initialized field values before the
	// constructor body runs.
	required := map[string]bool{}
	for _, f := range class.Fields {
		var v Value = Null{}
		if f.Initializer != nil {
			v = ev.evalExpression(f.Initializer, instanceScope)
			if IsError(v) {
				return v
			}
			v = ev.resolve(v, instanceScope)
		} else if isNonNullableType(f.Type) {
			required[f.Name] = true
		}
		ev.Env.Bind(f.Name, instanceScope, v)
	}

	if ctor != nil {
		if err := ev.bindParams(ctor.Params, args, instanceScope, e.Pos()); err != nil {
			ev.Env.RemoveByScope(instanceScope)
			return err
		}
		// Run the constructor body directly against instanceScope rather
		// than through evalBlock: evalBlock defers RemoveByScope on the
		// scope it's handed, which would wipe `this` and every field the
		// moment the constructor returns, before the instance is usable.
		for _, stmt := range ctor.Body.Statements {
			result := ev.evalStatement(stmt, instanceScope)
			if IsError(result) {
				return result
			}
			if _, ok := result.(ReturnValue); ok {
				break
			}
		}
	}

	for name := range required {
		if v, ok := ev.Env.Get(name, instanceScope); !ok || isNullValue(v) {
			return NewError(e.Pos(), diagnostics.Declaration, "field %q was not initialized by the constructor", name)
		}
	}

	return Reference{Path: []Value{String{Value: "this"}}, Scope: instanceScope}
}

func isNullValue(v Value) bool {
	_, ok := v.(Null)
	return ok
}

func isNonNullableType(t ast.TypeExpr) bool {
	if t == nil {
		return false
	}
	if pred, ok := t.(*ast.PredefinedType); ok {
		return pred.Kind != "null" && pred.Kind != "any"
	}
	return true
}

func selectConstructor(ctors []Constructor, args []Value, ev *Evaluator) *Constructor {
	for i := range ctors {
		c := &ctors[i]
		if !arityFits(c.Params, len(args)) {
			continue
		}
		matches := true
		for j, p := range c.Params {
			if j >= len(args) {
				break
			}
			if p.Type != nil && !IsTypeOf(args[j], p.Type, ev) {
				matches = false
				break
			}
		}
		if matches {
			return c
		}
	}
	return nil
}
