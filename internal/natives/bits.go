package natives

import (
	"github.com/funvibe/funbit/pkg/funbit"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/modules"
)

// Bits exposes funbit's builder/matcher as fixed-width byte pack/unpack,
// through its public pkg/funbit API. Each element is one unsigned 8-bit
// segment; wider/signed/float segments are out of scope for this
// reference module.
func Bits() *modules.Module {
	return &modules.Module{
		Name: config.NativeModuleBits,
		Exports: []modules.Export{
			{Name: "pack", Value: evaluator.NativeFunction{Name: "pack", Fn: bitsPack}},
			{Name: "unpack", Value: evaluator.NativeFunction{Name: "unpack", Fn: bitsUnpack}},
		},
	}
}

func bitsPack(a *evaluator.FArguments) evaluator.Value {
	arr, ok := a.Get(0).(evaluator.Array)
	if !ok {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "bits.pack: argument must be an array of numbers")
	}
	b := funbit.NewBuilder()
	for _, el := range arr.Elements {
		n, ok := el.(evaluator.Number)
		if !ok {
			return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "bits.pack: every element must be a number")
		}
		funbit.AddInteger(b, int(n.Value), funbit.WithSize(8))
	}
	built, err := funbit.Build(b)
	if err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "bits.pack: %s", err.Error())
	}
	return evaluator.String{Value: string(built.ToBytes())}
}

func bitsUnpack(a *evaluator.FArguments) evaluator.Value {
	data := a.GetString(0)
	count := int(a.GetNumber(1))
	if count < 0 || count > len(data) {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Type, "bits.unpack: count exceeds available bytes")
	}

	bs := funbit.NewBitStringFromBytes([]byte(data))
	m := funbit.NewMatcher()
	fields := make([]int, count)
	for i := range fields {
		funbit.Integer(m, &fields[i], funbit.WithSize(8))
	}
	if _, err := funbit.Match(m, bs); err != nil {
		return evaluator.NewError(diagnostics.Span{}, diagnostics.Implementing, "bits.unpack: %s", err.Error())
	}

	elements := make([]evaluator.Value, count)
	for i, v := range fields {
		elements[i] = evaluator.Number{Value: int64(v)}
	}
	return evaluator.Array{Elements: elements, Size: evaluator.ArraySize{Fixed: true, N: count}}
}
