package evaluator

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
)

// FArguments is what a NativeFunction receives on invocation: typed
// accessors over the call's already-bound arguments, plus a returns()
// slot the evaluator reads back after the native body runs.
type FArguments struct {
	values     []Value
	returnSlot Value
}

// NewFArguments builds an FArguments over already-evaluated values, for
// callers (tests, hosts invoking a NativeFunction directly) that aren't
// going through callNative's call-state machine.
func NewFArguments(values []Value) *FArguments {
	return &FArguments{values: values, returnSlot: None{}}
}

func (a *FArguments) Get(i int) Value {
	if i < 0 || i >= len(a.values) {
		return None{}
	}
	return a.values[i]
}

func (a *FArguments) GetString(i int) string {
	if s, ok := a.Get(i).(String); ok {
		return s.Value
	}
	return ""
}

func (a *FArguments) GetNumber(i int) int64 {
	if n, ok := a.Get(i).(Number); ok {
		return n.Value
	}
	return 0
}

func (a *FArguments) GetBoolean(i int) bool {
	if b, ok := a.Get(i).(Boolean); ok {
		return b.Value
	}
	return false
}

func (a *FArguments) GetFunction(i int) (*ArrowFunction, bool) {
	af, ok := a.Get(i).(*ArrowFunction)
	return af, ok
}

func (a *FArguments) GetInterface(i int) (Interface, bool) {
	it, ok := a.Get(i).(Interface)
	return it, ok
}

func (a *FArguments) Len() int { return len(a.values) }

func (a *FArguments) Returns(v Value) { a.returnSlot = v }

// evalCallExpression runs the call state machine:
// Ready → ArityChecked → TypeChecked → Bound → Running →
// (Succeeded | ReturnedEarly | Failed).
func (ev *Evaluator) evalCallExpression(e *ast.CallExpression, scope []string) Value {
	calleeVal := ev.evalExpression(e.Callee, scope)
	if IsError(calleeVal) {
		return calleeVal
	}
	callee := ev.resolve(calleeVal, scope)
	if IsError(callee) {
		return callee
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v := ev.evalExpression(a, scope)
		if IsError(v) {
			return v
		}
		args = append(args, ev.resolve(v, scope))
	}

	switch fn := callee.(type) {
	case *Function:
		return ev.callFunction(fn, args, e, scope)
	case *ArrowFunction:
		return ev.callArrow(fn, args, e, scope)
	case NativeFunction:
		return ev.callNative(fn, args)
	case Reference:
		// calling through a reference-to-a-reference resolves one level
		// then requires a callable.
		resolved := ev.resolve(fn, scope)
		if IsError(resolved) {
			return resolved
		}
		switch resolved.(type) {
		case *Function, *ArrowFunction, NativeFunction:
			return ev.evalCallExpression(&ast.CallExpression{Base: e.Base, Callee: e.Callee, Args: e.Args, Lambda: e.Lambda}, scope)
		default:
			return NewError(e.Pos(), diagnostics.Type, "value is not callable")
		}
	default:
		return NewError(e.Pos(), diagnostics.Type, "value of kind %s is not callable", callee.Kind())
	}
}

// candidateFor picks fn itself or the first overload whose arity fits the
// supplied arguments and whose declared parameter types accept them
// positionally, implementing §4.4's overload-aware call; it falls back to
// fn when none does.
func candidateFor(fn *Function, args []Value, ev *Evaluator) *Function {
	candidates := append([]*Function{fn}, fn.Overloads...)
	for _, c := range candidates {
		if !arityFits(c.Params, len(args)) {
			continue
		}
		typed := true
		for i, p := range c.Params {
			if i < len(args) && p.Type != nil && !p.Rest && !IsTypeOf(args[i], p.Type, ev) {
				typed = false
			}
		}
		if typed {
			return c
		}
	}
	return fn
}

func arityFits(params []ast.Param, argc int) bool {
	required := 0
	for _, p := range params {
		if !p.Optional && !p.Rest {
			required++
		}
	}
	if argc < required {
		return false
	}
	hasRest := len(params) > 0 && params[len(params)-1].Rest
	if !hasRest && argc > len(params) {
		return false
	}
	return true
}

func (ev *Evaluator) callFunction(fn *Function, args []Value, call *ast.CallExpression, scope []string) Value {
	chosen := candidateFor(fn, args, ev)
	if !arityFits(chosen.Params, len(args)) {
		return NewError(call.Pos(), diagnostics.Type, "arity mismatch calling %q: got %d arguments", chosen.Name, len(args))
	}
	args = liftTrailingLambda(chosen.Params, args, call, scope)

	callScope := pushScope(scope, "func:"+chosen.Name)
	defer ev.Env.RemoveByScope(callScope)

	if err := ev.bindParams(chosen.Params, args, callScope, call.Pos()); err != nil {
		return err
	}

	result := ev.evalBlock(chosen.Body, callScope)
	if IsError(result) {
		return result
	}
	if rv, ok := result.(ReturnValue); ok {
		return rv.Value
	}
	return result
}

func (ev *Evaluator) callArrow(fn *ArrowFunction, args []Value, call *ast.CallExpression, scope []string) Value {
	if !arityFits(fn.Params, len(args)) {
		return NewError(call.Pos(), diagnostics.Type, "arity mismatch calling arrow function: got %d arguments", len(args))
	}
	args = liftTrailingLambda(fn.Params, args, call, scope)

	callScope := pushScope(fn.Closure, "closure")
	defer ev.Env.RemoveByScope(callScope)

	if err := ev.bindParams(fn.Params, args, callScope, call.Pos()); err != nil {
		return err
	}

	if block, ok := fn.Body.(*ast.BlockExpression); ok {
		result := ev.evalBlock(block, callScope)
		if IsError(result) {
			return result
		}
		if rv, ok := result.(ReturnValue); ok {
			return rv.Value
		}
		return result
	}
	return ev.evalExpression(fn.Body, callScope)
}

// callNative accepts either calling convention a host function may use:
// returning its result directly (as the string-method natives do), or
// writing it through FArguments.Returns and returning nil (as natives
// wrapping a library with early-exit error paths tend to do).
func (ev *Evaluator) callNative(fn NativeFunction, args []Value) Value {
	fa := &FArguments{values: args, returnSlot: None{}}
	if v := fn.Fn(fa); v != nil {
		return v
	}
	return fa.returnSlot
}

// liftTrailingLambda lifts call.Lambda into the last parameter slot when
// it is empty and that parameter declares a function type. The lambda
// closes over the call site's own scope.
func liftTrailingLambda(params []ast.Param, args []Value, call *ast.CallExpression, scope []string) []Value {
	if call.Lambda == nil || len(params) == 0 {
		return args
	}
	last := params[len(params)-1]
	if len(args) >= len(params) {
		return args
	}
	if _, ok := last.Type.(*ast.FunctionType); !ok {
		return args
	}
	return append(args, &ArrowFunction{
		Params:     call.Lambda.Params,
		ReturnType: call.Lambda.ReturnType,
		Body:       call.Lambda.Body,
		Closure:    scope,
	})
}

func (ev *Evaluator) bindParams(params []ast.Param, args []Value, scope []string, span diagnostics.Span) Value {
	for i, p := range params {
		var v Value
		switch {
		case i < len(args):
			v = args[i]
		case p.Default != nil:
			v = ev.evalExpression(p.Default, scope)
			if IsError(v) {
				return v
			}
			v = ev.resolve(v, scope)
		default:
			v = None{}
		}
		if p.Type != nil && !p.Optional {
			if !IsTypeOf(v, p.Type, ev) {
				return NewError(span, diagnostics.Type, "argument %q does not match declared type", p.Name)
			}
		}
		ev.Env.Bind(p.Name, scope, v)
	}
	return nil
}
