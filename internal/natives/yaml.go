package natives

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/modules"
)

// YAML converts between YAML text and the JSON text the json module
// already reads with gjson/sjson, so a script decodes once (yaml.toJSON)
// and then uses json.get/json.set for everything else. encoding/json is
// stdlib glue for the interface{} <-> text hop yaml.v3 needs.
func YAML() *modules.Module {
	return &modules.Module{
		Name: config.NativeModuleYAML,
		Exports: []modules.Export{
			{Name: "toJSON", Value: evaluator.NativeFunction{Name: "toJSON", Fn: yamlToJSON}},
			{Name: "fromJSON", Value: evaluator.NativeFunction{Name: "fromJSON", Fn: yamlFromJSON}},
		},
	}
}

func yamlToJSON(a *evaluator.FArguments) evaluator.Value {
	var doc interface{}
	if err := yaml.Unmarshal([]byte(a.GetString(0)), &doc); err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "yaml.toJSON: %s", err.Error())
	}
	out, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "yaml.toJSON: %s", err.Error())
	}
	return evaluator.String{Value: string(out)}
}

func yamlFromJSON(a *evaluator.FArguments) evaluator.Value {
	var doc interface{}
	if err := json.Unmarshal([]byte(a.GetString(0)), &doc); err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "yaml.fromJSON: %s", err.Error())
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "yaml.fromJSON: %s", err.Error())
	}
	return evaluator.String{Value: string(out)}
}

// normalizeYAML recursively copies the map[string]interface{} and
// []interface{} nodes of a decoded document. Mappings whose keys are not
// all strings decode as map[interface{}]interface{}; those are returned
// unchanged, so encoding/json fails on them and toJSON reports an error.
func normalizeYAML(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			out[k] = normalizeYAML(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
