package lumen

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/evaluator"
)

func TestEvalArithmetic(t *testing.T) {
	e := New()
	res := e.Eval("2 + 3 * 4;")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	n, ok := res.Value.(evaluator.Number)
	if !ok || n.Value != 14 {
		t.Fatalf("expected Number(14), got %#v", res.Value)
	}
}

func TestEvalParseErrorShortCircuits(t *testing.T) {
	e := New()
	res := e.Eval("let x: number = ;")
	if res.Err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestEvalJSONModuleIsRegisteredByDefault(t *testing.T) {
	e := New()
	res := e.Eval(`import { get } from "json"; get("{\"a\":1}", "a");`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	n, ok := res.Value.(evaluator.Number)
	if !ok || n.Value != 1 {
		t.Fatalf("expected Number(1), got %#v", res.Value)
	}
}

func TestWithoutDefaultModulesLeavesRegistryEmpty(t *testing.T) {
	e := New(WithoutDefaultModules())
	res := e.Eval(`import { get } from "json"; get("{}", "a");`)
	if res.Err == nil {
		t.Fatalf("expected an unknown-module error with default modules skipped")
	}
}

func TestRegisterFunctionIsCallableFromScript(t *testing.T) {
	e := New(WithoutDefaultModules())
	e.RegisterFunction("host", "double", func(a *evaluator.FArguments) evaluator.Value {
		return evaluator.Number{Value: a.GetNumber(0) * 2}
	})
	res := e.Eval(`import { double } from "host"; double(21);`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	n, ok := res.Value.(evaluator.Number)
	if !ok || n.Value != 42 {
		t.Fatalf("expected Number(42), got %#v", res.Value)
	}
}
