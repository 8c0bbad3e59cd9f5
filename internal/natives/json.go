package natives

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/modules"
)

// JSON wraps gjson/sjson for path-based reads and writes over a raw JSON
// document held as a plain string value, for reaching into a document by
// dotted path rather than paying for a full unmarshal.
func JSON() *modules.Module {
	return &modules.Module{
		Name: config.NativeModuleJSON,
		Exports: []modules.Export{
			{Name: "get", Value: evaluator.NativeFunction{Name: "get", Fn: jsonGet}},
			{Name: "set", Value: evaluator.NativeFunction{Name: "set", Fn: jsonSet}},
			{Name: "valid", Value: evaluator.NativeFunction{Name: "valid", Fn: jsonValid}},
			{Name: "exists", Value: evaluator.NativeFunction{Name: "exists", Fn: jsonExists}},
		},
	}
}

func jsonResultToValue(r gjson.Result) evaluator.Value {
	switch r.Type {
	case gjson.Null:
		return evaluator.Null{}
	case gjson.False:
		return evaluator.Boolean{Value: false}
	case gjson.True:
		return evaluator.Boolean{Value: true}
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return evaluator.Number{Value: int64(r.Num)}
		}
		return evaluator.Float{Value: r.Num}
	case gjson.String:
		return evaluator.String{Value: r.Str}
	default:
		// Objects and arrays stay as their raw JSON text; a script that
		// wants structured access calls json.get again with a deeper path.
		return evaluator.String{Value: r.Raw}
	}
}

func jsonGet(a *evaluator.FArguments) evaluator.Value {
	doc, path := a.GetString(0), a.GetString(1)
	r := gjson.Get(doc, path)
	if !r.Exists() {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Reference, "json.get: no value at path %q", path)
	}
	return jsonResultToValue(r)
}

func jsonExists(a *evaluator.FArguments) evaluator.Value {
	doc, path := a.GetString(0), a.GetString(1)
	return evaluator.Boolean{Value: gjson.Get(doc, path).Exists()}
}

func jsonValid(a *evaluator.FArguments) evaluator.Value {
	return evaluator.Boolean{Value: gjson.Valid(a.GetString(0))}
}

func jsonValueToGo(v evaluator.Value) interface{} {
	switch v := v.(type) {
	case evaluator.Number:
		return v.Value
	case evaluator.Float:
		return v.Value
	case evaluator.Boolean:
		return v.Value
	case evaluator.String:
		return v.Value
	case evaluator.Null:
		return nil
	default:
		return v.Inspect()
	}
}

func jsonSet(a *evaluator.FArguments) evaluator.Value {
	doc, path := a.GetString(0), a.GetString(1)
	updated, err := sjson.Set(doc, path, jsonValueToGo(a.Get(2)))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "json.set: %s", err.Error())
	}
	return evaluator.String{Value: updated}
}
