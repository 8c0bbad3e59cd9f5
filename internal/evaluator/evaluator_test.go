package evaluator

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/modules"
	"github.com/lumen-lang/lumen/internal/parser"
)

func run(t *testing.T, src string) (Value, *Evaluator) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	return ev.EvalProgram(prog.Value), ev
}

func TestScenarioArithmeticPrecedence(t *testing.T) {
	v, ev := run(t, `let x: number = 2 + 3 * 4; x;`)
	v = ev.resolve(v, []string{"root"})
	n, ok := v.(Number)
	if !ok || n.Value != 14 {
		t.Fatalf("x = %#v, want Number(14)", v)
	}
}

func TestScenarioEnumPositionalValues(t *testing.T) {
	p := parser.New(lexer.New(`enum E { A, B = 10, C } E["A"];`))
	prog := p.ParseProgram()
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	a := ev.resolve(result, []string{"root"})
	if n, ok := a.(Number); !ok || n.Value != 0 {
		t.Fatalf("E[A] = %#v, want 0", a)
	}

	p2 := parser.New(lexer.New(`enum E { A, B = 10, C } E["C"];`))
	prog2 := p2.ParseProgram()
	ev2 := New(modules.NewRegistry())
	result2 := ev2.EvalProgram(prog2.Value)
	c := ev2.resolve(result2, []string{"root"})
	if n, ok := c.(Number); !ok || n.Value != 2 {
		t.Fatalf("E[C] = %#v, want 2", c)
	}
}

func TestScenarioStringLengthAndStartsWith(t *testing.T) {
	p := parser.New(lexer.New(`const s = "abc"; s["length"];`))
	prog := p.ParseProgram()
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	n, ok := ev.resolve(result, []string{"root"}).(Number)
	if !ok || n.Value != 3 {
		t.Fatalf("s[length] = %#v, want 3", result)
	}

	p2 := parser.New(lexer.New(`const s = "abc"; s["startsWith"]("a");`))
	prog2 := p2.ParseProgram()
	ev2 := New(modules.NewRegistry())
	result2 := ev2.EvalProgram(prog2.Value)
	if b, ok := ev2.resolve(result2, []string{"root"}).(Boolean); !ok || !b.Value {
		t.Fatalf("s[startsWith](a) = %#v, want true", result2)
	}
}

func TestScenarioClassConstructorAssignsField(t *testing.T) {
	p := parser.New(lexer.New(`
class P {
	x: number;
	constructor(v: number) {
		this.x = v;
	}
}
const p = new P(7);
p["x"];
`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	n, ok := ev.resolve(result, []string{"root"}).(Number)
	if !ok || n.Value != 7 {
		t.Fatalf("p.x = %#v, want 7", result)
	}
}

func TestScenarioClassConstructorMissingFieldIsDeclarationError(t *testing.T) {
	p := parser.New(lexer.New(`
class P {
	x: number;
	constructor(v: number) {
	}
}
new P(7);
`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	errVal, ok := result.(ErrorValue)
	if !ok {
		t.Fatalf("result = %#v, want ErrorValue", result)
	}
	if errVal.Code != diagnostics.Declaration {
		t.Fatalf("code = %v, want Declaration", errVal.Code)
	}
}

func TestScenarioMatchExpression(t *testing.T) {
	p := parser.New(lexer.New(`match (1 + 1) { 2 => "ok", 3 => "no" };`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	s, ok := ev.resolve(result, []string{"root"}).(String)
	if !ok || s.Value != "ok" {
		t.Fatalf("match result = %#v, want \"ok\"", result)
	}
}

func TestScenarioTrailingBlockAsLambda(t *testing.T) {
	p := parser.New(lexer.New(`
function apply(n: number, g: (x: number) => number): number {
	return g(n);
}
apply(3) { (x) => x * x };
`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	n, ok := ev.resolve(result, []string{"root"}).(Number)
	if !ok || n.Value != 9 {
		t.Fatalf("apply(3){squared} = %#v, want 9", result)
	}
}

func TestOverloadAccumulation(t *testing.T) {
	p := parser.New(lexer.New(`
function f(a: number): number { return a; }
function f(a: number, b: number): number { return a + b; }
`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	ev.EvalProgram(prog.Value)
	v, ok := ev.Env.Get("f", []string{"root"})
	if !ok {
		t.Fatalf("f not bound")
	}
	fn, ok := v.(*Function)
	if !ok {
		t.Fatalf("f = %#v, want *Function", v)
	}
	if len(fn.Overloads) != 1 {
		t.Fatalf("overloads = %d, want 1", len(fn.Overloads))
	}
}

func TestScopeHygieneAfterCall(t *testing.T) {
	p := parser.New(lexer.New(`
function f(a: number): number {
	let local: number = a + 1;
	return local;
}
f(1);
`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	ev.EvalProgram(prog.Value)
	if ev.Env.Exists("local", []string{"root", "func:f"}) {
		t.Fatalf("local survived call scope teardown")
	}
}

func TestErrorAbsorptionStopsBlock(t *testing.T) {
	p := parser.New(lexer.New(`
function f(): number {
	let x: number = y;
	return 99;
}
f();
`))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("parse errors: %v", p.Errors())
	}
	ev := New(modules.NewRegistry())
	result := ev.EvalProgram(prog.Value)
	if !IsError(result) {
		t.Fatalf("result = %#v, want an Error (undefined y)", result)
	}
}

func TestIsTypeOfAnyAcceptsEverything(t *testing.T) {
	anyType := &ast.PredefinedType{Kind: "any"}
	if !IsTypeOf(Number{Value: 1}, anyType, nil) {
		t.Fatalf("any must accept a number")
	}
	if !IsTypeOf(String{Value: "x"}, anyType, nil) {
		t.Fatalf("any must accept a string")
	}
}

func TestIsTypeOfUnionIsExistential(t *testing.T) {
	union := &ast.UnionType{Types: []ast.TypeExpr{
		&ast.PredefinedType{Kind: "number"},
		&ast.PredefinedType{Kind: "string"},
	}}
	if !IsTypeOf(Number{Value: 1}, union, nil) {
		t.Fatalf("number should satisfy number|string")
	}
	if !IsTypeOf(String{Value: "x"}, union, nil) {
		t.Fatalf("string should satisfy number|string")
	}
	if IsTypeOf(Boolean{Value: true}, union, nil) {
		t.Fatalf("boolean should not satisfy number|string")
	}
}
