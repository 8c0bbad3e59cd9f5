package natives

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/lumen-lang/lumen/internal/evaluator"
)

func TestYAMLToJSONConvertsMapping(t *testing.T) {
	v := yamlToJSON(evaluator.NewFArguments([]evaluator.Value{
		evaluator.String{Value: "name: ada\nage: 36\n"},
	}))
	s, ok := v.(evaluator.String)
	if !ok {
		t.Fatalf("toJSON returned %#v, want String", v)
	}
	if !gjson.Valid(s.Value) {
		t.Fatalf("toJSON produced invalid JSON: %s", s.Value)
	}
	if name := gjson.Get(s.Value, "name").String(); name != "ada" {
		t.Fatalf("name = %q, want ada", name)
	}
	if age := gjson.Get(s.Value, "age").Int(); age != 36 {
		t.Fatalf("age = %d, want 36", age)
	}
}

func TestYAMLFromJSONConvertsBack(t *testing.T) {
	v := yamlFromJSON(evaluator.NewFArguments([]evaluator.Value{
		evaluator.String{Value: `{"name":"ada","age":36}`},
	}))
	s, ok := v.(evaluator.String)
	if !ok {
		t.Fatalf("fromJSON returned %#v, want String", v)
	}

	back := yamlToJSON(evaluator.NewFArguments([]evaluator.Value{s}))
	backStr, ok := back.(evaluator.String)
	if !ok {
		t.Fatalf("round-trip toJSON returned %#v, want String", back)
	}
	if name := gjson.Get(backStr.Value, "name").String(); name != "ada" {
		t.Fatalf("round-tripped name = %q, want ada", name)
	}
}

func TestYAMLToJSONRejectsInvalidYAML(t *testing.T) {
	v := yamlToJSON(evaluator.NewFArguments([]evaluator.Value{
		evaluator.String{Value: "not: valid: yaml: at: all:"},
	}))
	if _, ok := v.(evaluator.ErrorValue); !ok {
		t.Fatalf("toJSON(invalid) = %#v, want ErrorValue", v)
	}
}

func TestYAMLFromJSONRejectsInvalidJSON(t *testing.T) {
	v := yamlFromJSON(evaluator.NewFArguments([]evaluator.Value{
		evaluator.String{Value: "{not json"},
	}))
	if _, ok := v.(evaluator.ErrorValue); !ok {
		t.Fatalf("fromJSON(invalid) = %#v, want ErrorValue", v)
	}
}
