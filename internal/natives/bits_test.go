package natives

import (
	"testing"

	"github.com/lumen-lang/lumen/internal/evaluator"
)

func TestBitsPackUnpackRoundTrips(t *testing.T) {
	elements := []evaluator.Value{
		evaluator.Number{Value: 1},
		evaluator.Number{Value: 2},
		evaluator.Number{Value: 255},
	}
	arr := evaluator.Array{Elements: elements, Size: evaluator.ArraySize{Fixed: true, N: len(elements)}}

	packed := bitsPack(evaluator.NewFArguments([]evaluator.Value{arr}))
	s, ok := packed.(evaluator.String)
	if !ok {
		t.Fatalf("pack returned %#v, want String", packed)
	}
	if len(s.Value) != len(elements) {
		t.Fatalf("packed %d bytes, want %d", len(s.Value), len(elements))
	}

	unpacked := bitsUnpack(evaluator.NewFArguments([]evaluator.Value{
		s, evaluator.Number{Value: int64(len(elements))},
	}))
	out, ok := unpacked.(evaluator.Array)
	if !ok {
		t.Fatalf("unpack returned %#v, want Array", unpacked)
	}
	if len(out.Elements) != len(elements) {
		t.Fatalf("unpack returned %d elements, want %d", len(out.Elements), len(elements))
	}
	for i, want := range elements {
		got, ok := out.Elements[i].(evaluator.Number)
		if !ok || got.Value != want.(evaluator.Number).Value {
			t.Fatalf("element %d = %#v, want %#v", i, out.Elements[i], want)
		}
	}
}

func TestBitsPackRejectsNonArray(t *testing.T) {
	v := bitsPack(evaluator.NewFArguments([]evaluator.Value{evaluator.String{Value: "nope"}}))
	if _, ok := v.(evaluator.ErrorValue); !ok {
		t.Fatalf("pack(non-array) = %#v, want ErrorValue", v)
	}
}

func TestBitsPackRejectsNonNumberElement(t *testing.T) {
	arr := evaluator.Array{Elements: []evaluator.Value{evaluator.String{Value: "x"}}}
	v := bitsPack(evaluator.NewFArguments([]evaluator.Value{arr}))
	if _, ok := v.(evaluator.ErrorValue); !ok {
		t.Fatalf("pack([non-number]) = %#v, want ErrorValue", v)
	}
}

func TestBitsUnpackRejectsOversizedCount(t *testing.T) {
	v := bitsUnpack(evaluator.NewFArguments([]evaluator.Value{
		evaluator.String{Value: "ab"}, evaluator.Number{Value: 10},
	}))
	if _, ok := v.(evaluator.ErrorValue); !ok {
		t.Fatalf("unpack(count > len(data)) = %#v, want ErrorValue", v)
	}
}
