// Package natives holds the reference native modules proving out the
// host-registration seam: each wraps one real third-party library behind
// a Module of NativeFunction exports, one real Go value hidden behind a
// Value, looked up by name from a module.
package natives

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/modules"
)

// UUID wraps google/uuid behind a flat function-per-operation export
// list; UUIDs pass to and from scripts as plain strings.
func UUID() *modules.Module {
	return &modules.Module{
		Name: config.NativeModuleUUID,
		Exports: []modules.Export{
			{Name: "v4", Value: evaluator.NativeFunction{Name: "v4", Fn: uuidV4}},
			{Name: "v5", Value: evaluator.NativeFunction{Name: "v5", Fn: uuidV5}},
			{Name: "v7", Value: evaluator.NativeFunction{Name: "v7", Fn: uuidV7}},
			{Name: "nil", Value: evaluator.NativeFunction{Name: "nil", Fn: uuidNilFn}},
			{Name: "parse", Value: evaluator.NativeFunction{Name: "parse", Fn: uuidParse}},
			{Name: "isNil", Value: evaluator.NativeFunction{Name: "isNil", Fn: uuidIsNil}},
			{Name: "version", Value: evaluator.NativeFunction{Name: "version", Fn: uuidVersion}},
			{Name: "namespaceDNS", Value: evaluator.String{Value: uuid.NameSpaceDNS.String()}},
			{Name: "namespaceURL", Value: evaluator.String{Value: uuid.NameSpaceURL.String()}},
		},
	}
}

func uuidV4(a *evaluator.FArguments) evaluator.Value {
	return evaluator.String{Value: uuid.New().String()}
}

func uuidV5(a *evaluator.FArguments) evaluator.Value {
	ns, err := uuid.Parse(a.GetString(0))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "uuid.v5: invalid namespace %q", a.GetString(0))
	}
	return evaluator.String{Value: uuid.NewSHA1(ns, []byte(a.GetString(1))).String()}
}

func uuidV7(a *evaluator.FArguments) evaluator.Value {
	u, err := uuid.NewV7()
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "uuid.v7: %s", err.Error())
	}
	return evaluator.String{Value: u.String()}
}

func uuidNilFn(a *evaluator.FArguments) evaluator.Value {
	return evaluator.String{Value: uuid.Nil.String()}
}

func uuidParse(a *evaluator.FArguments) evaluator.Value {
	u, err := uuid.Parse(a.GetString(0))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "uuid.parse: %s", err.Error())
	}
	return evaluator.String{Value: u.String()}
}

func uuidIsNil(a *evaluator.FArguments) evaluator.Value {
	return evaluator.Boolean{Value: strings.EqualFold(a.GetString(0), uuid.Nil.String())}
}

func uuidVersion(a *evaluator.FArguments) evaluator.Value {
	u, err := uuid.Parse(a.GetString(0))
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "uuid.version: %s", err.Error())
	}
	return evaluator.Number{Value: int64(u.Version())}
}
