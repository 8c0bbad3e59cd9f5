// Package lumen is the embeddable host API: construct an Engine with
// functional options, register native modules and host functions, then
// Eval a source string straight through the lexer/parser/evaluator
// pipeline.
package lumen

import (
	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/modules"
	"github.com/lumen-lang/lumen/internal/natives"
	"github.com/lumen-lang/lumen/internal/parser"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithoutDefaultModules skips registering the reference native modules
// (uuid/json/yaml/sql/bits), leaving the registry empty for a host that
// wants to supply its own set from scratch.
func WithoutDefaultModules() Option {
	return func(e *Engine) { e.skipDefaults = true }
}

// WithModule registers an additional native module alongside (or instead
// of) the reference set.
func WithModule(m *modules.Module) Option {
	return func(e *Engine) { e.extraModules = append(e.extraModules, m) }
}

// Engine is a reusable interpreter instance: one Environment and module
// registry shared across calls to Eval, so host-registered functions and
// top-level declarations from one Eval are visible to the next.
type Engine struct {
	eval         *evaluator.Evaluator
	registry     *modules.Registry
	skipDefaults bool
	extraModules []*modules.Module
}

// New builds an Engine, registering the reference native modules unless
// WithoutDefaultModules is given.
func New(opts ...Option) *Engine {
	e := &Engine{registry: modules.NewRegistry()}
	for _, opt := range opts {
		opt(e)
	}
	if !e.skipDefaults {
		for _, m := range natives.All() {
			e.registry.Register(m)
		}
	}
	for _, m := range e.extraModules {
		e.registry.Register(m)
	}
	e.eval = evaluator.New(e.registry)
	return e
}

// RegisterFunction exposes a host-side Go function to scripts under the
// given module name, so `import { name } from "moduleName"` resolves to
// it. fn must already speak this language's native calling convention
// (*evaluator.FArguments) -> evaluator.Value) rather than being reflected
// over arbitrary Go signatures, since this language's value lattice has
// no general Go-value marshaling layer.
func (e *Engine) RegisterFunction(moduleName, name string, fn func(*evaluator.FArguments) evaluator.Value) {
	if m, ok := e.registry.Lookup(moduleName); ok {
		m.Exports = append(m.Exports, modules.Export{Name: name, Value: evaluator.NativeFunction{Name: name, Fn: fn}})
		return
	}
	e.registry.Register(&modules.Module{
		Name:    moduleName,
		Exports: []modules.Export{{Name: name, Value: evaluator.NativeFunction{Name: name, Fn: fn}}},
	})
}

// Result is what Eval returns: either a final Value, or a structured
// diagnostics.Error (parse-time or run-time) a host can Render.
type Result struct {
	Value Value
	Err   *diagnostics.Error
}

// Value re-exports evaluator.Value so callers don't need to import
// internal/evaluator directly to type-switch on a Result.
type Value = evaluator.Value

// Eval runs source through the lexer, parser, and this Engine's
// evaluator, returning the value of the last top-level statement. Parser
// errors short-circuit before any evaluation happens.
func (e *Engine) Eval(source string) Result {
	l := lexer.New(source)
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return Result{Err: errs[0]}
	}

	v := e.eval.EvalProgram(prog.Value)
	if ev, ok := v.(evaluator.ErrorValue); ok {
		return Result{Err: ev.Error}
	}
	return Result{Value: v}
}

// Registry exposes the underlying module registry for hosts that need to
// inspect or extend it beyond RegisterFunction/WithModule.
func (e *Engine) Registry() *modules.Registry { return e.registry }

// SourceFileExt is re-exported so hosts don't need to import
// internal/config just to filter files by extension.
const SourceFileExt = config.SourceFileExt
