package srp

import (
	"math"
	"testing"
)

func f64Bytes(v float64) []byte {
	b := make([]byte, 8)
	writeF64(b, v)
	return b
}

func TestInterpAttributes_F64WeightedSum(t *testing.T) {
	ctx := NewContext()
	layout := NewVaryingLayout(VaryingAttr{ElementType: ElementF64, ElementCount: 1})

	a := f64Bytes(0)
	b := f64Bytes(10)
	dst := make([]byte, 8)

	interpAttributes(ctx, layout, [][]byte{a, b}, []float64{0.25, 0.75}, dst)
	if got := readF64(dst); math.Abs(got-7.5) > 1e-12 {
		t.Fatalf("interpolated value = %v, want 7.5", got)
	}
}

func TestInterpAttributes_UnsupportedElementTypeEmitsAndLeavesDst(t *testing.T) {
	var gotSeverity Severity
	ctx := NewContext(WithMessageFunc(func(sev Severity, _ Source, _ string, _ any) {
		gotSeverity = sev
	}, nil))
	layout := NewVaryingLayout(VaryingAttr{ElementType: ElementU32, ElementCount: 1})

	dst := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	interpAttributes(ctx, layout, [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}, []float64{0.5, 0.5}, dst)

	if gotSeverity != SeverityError {
		t.Fatalf("expected an error diagnostic for unsupported element type, got %v", gotSeverity)
	}
	for _, b := range dst {
		if b != 0xAA {
			t.Fatalf("dst was modified despite unsupported element type: %v", dst)
		}
	}
}

func TestLerpVaryings_ConstantAttributeStaysConstant(t *testing.T) {
	ctx := NewContext()
	layout := NewVaryingLayout(VaryingAttr{ElementType: ElementF64, ElementCount: 1})
	a := f64Bytes(3.5)
	b := f64Bytes(3.5)
	dst := make([]byte, 8)

	lerpVaryings(ctx, layout, a, b, 0.37, dst)
	if got := readF64(dst); got != 3.5 {
		t.Fatalf("lerp of equal endpoints = %v, want 3.5", got)
	}
}

func TestPerspectiveWeights_EqualInvWMatchesLambda(t *testing.T) {
	lambda := [3]float64{0.2, 0.3, 0.5}
	invW := [3]float64{2, 2, 2}
	weights, interpW := perspectiveWeights(lambda, invW)
	for i := range weights {
		if math.Abs(weights[i]-lambda[i]) > 1e-12 {
			t.Errorf("weights[%d] = %v, want %v (equal inv_w reduces to affine)", i, weights[i], lambda[i])
		}
	}
	if math.Abs(interpW-0.5) > 1e-12 {
		t.Errorf("interpW = %v, want 0.5", interpW)
	}
}
