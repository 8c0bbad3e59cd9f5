package natives

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/evaluator"
)

func TestJSONGetReadsByPath(t *testing.T) {
	doc := evaluator.String{Value: `{"user":{"name":"ada","age":36,"active":true}}`}

	name := jsonGet(evaluator.NewFArguments([]evaluator.Value{doc, evaluator.String{Value: "user.name"}}))
	if s, ok := name.(evaluator.String); !ok || s.Value != "ada" {
		t.Fatalf("get(user.name) = %#v, want String(ada)", name)
	}

	age := jsonGet(evaluator.NewFArguments([]evaluator.Value{doc, evaluator.String{Value: "user.age"}}))
	if n, ok := age.(evaluator.Number); !ok || n.Value != 36 {
		t.Fatalf("get(user.age) = %#v, want Number(36)", age)
	}

	active := jsonGet(evaluator.NewFArguments([]evaluator.Value{doc, evaluator.String{Value: "user.active"}}))
	if b, ok := active.(evaluator.Boolean); !ok || !b.Value {
		t.Fatalf("get(user.active) = %#v, want Boolean(true)", active)
	}
}

func TestJSONGetMissingPathIsReferenceError(t *testing.T) {
	doc := evaluator.String{Value: `{"user":{"name":"ada"}}`}
	v := jsonGet(evaluator.NewFArguments([]evaluator.Value{doc, evaluator.String{Value: "user.missing"}}))
	errVal, ok := v.(evaluator.ErrorValue)
	if !ok {
		t.Fatalf("get(missing) = %#v, want ErrorValue", v)
	}
	if errVal.Error.Code != "Reference" {
		t.Fatalf("get(missing) code = %s, want Reference", errVal.Error.Code)
	}
}

func TestJSONExists(t *testing.T) {
	doc := evaluator.String{Value: `{"user":{"name":"ada"}}`}
	yes := jsonExists(evaluator.NewFArguments([]evaluator.Value{doc, evaluator.String{Value: "user.name"}}))
	if b, ok := yes.(evaluator.Boolean); !ok || !b.Value {
		t.Fatalf("exists(user.name) = %#v, want true", yes)
	}
	no := jsonExists(evaluator.NewFArguments([]evaluator.Value{doc, evaluator.String{Value: "user.missing"}}))
	if b, ok := no.(evaluator.Boolean); !ok || b.Value {
		t.Fatalf("exists(user.missing) = %#v, want false", no)
	}
}

func TestJSONValid(t *testing.T) {
	good := jsonValid(evaluator.NewFArguments([]evaluator.Value{evaluator.String{Value: `{"a":1}`}}))
	if b, ok := good.(evaluator.Boolean); !ok || !b.Value {
		t.Fatalf("valid(good) = %#v, want true", good)
	}
	bad := jsonValid(evaluator.NewFArguments([]evaluator.Value{evaluator.String{Value: `{"a":}`}}))
	if b, ok := bad.(evaluator.Boolean); !ok || b.Value {
		t.Fatalf("valid(bad) = %#v, want false", bad)
	}
}

func TestJSONSetWritesByPath(t *testing.T) {
	doc := evaluator.String{Value: `{"user":{"name":"ada"}}`}
	updated := jsonSet(evaluator.NewFArguments([]evaluator.Value{
		doc, evaluator.String{Value: "user.age"}, evaluator.Number{Value: 36},
	}))
	s, ok := updated.(evaluator.String)
	if !ok {
		t.Fatalf("set returned %#v, want String", updated)
	}

	age := jsonGet(evaluator.NewFArguments([]evaluator.Value{s, evaluator.String{Value: "user.age"}}))
	if n, ok := age.(evaluator.Number); !ok || n.Value != 36 {
		t.Fatalf("get(user.age) after set = %#v, want Number(36)", age)
	}
}
