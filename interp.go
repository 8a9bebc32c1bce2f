// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "math"

// interpAttributes computes a weighted sum of one or more varying
// records into dst, attribute by attribute (§4.8). Only f64 elements
// are implemented; each attribute of another element type is reported
// on every call via the context's message callback and left as whatever dst already held
// (§4.8, §4.11: "the element is left as written by the zero-init, draws
// continue").
//
// Callers are responsible for choosing weights that already encode the
// interpolation mode: affine weights sum to 1 directly; perspective-
// correct weights are w_i*invW_i/denom, which also sum to 1 (§4.8).
func interpAttributes(ctx *Context, layout VaryingLayout, records [][]byte, weights []float64, dst []byte) {
	offsets := layout.offsets()
	for ai, attr := range layout.Attrs {
		off := offsets[ai]
		if attr.ElementType != ElementF64 {
			ctx.emit(SeverityError, SourceRasterizer,
				"varying interpolation: element type %v not implemented", attr.ElementType)
			continue
		}
		for e := 0; e < attr.ElementCount; e++ {
			byteOff := off + e*8
			var sum float64
			for i, rec := range records {
				sum += weights[i] * readF64(rec[byteOff:])
			}
			writeF64(dst[byteOff:], sum)
		}
	}
}

// lerpVaryings interpolates a single varying record pair at parameter t
// (§4.6: "Varying interpolation at a clip vertex is always affine").
func lerpVaryings(ctx *Context, layout VaryingLayout, a, b []byte, t float64, dst []byte) {
	interpAttributes(ctx, layout, [][]byte{a, b}, []float64{1 - t, t}, dst)
}

// perspectiveWeights converts barycentric weights lambda and per-vertex
// inv_w into the perspective-correct weights of §4.8, along with the
// interpolated reciprocal-of-w (1/denom), which becomes the fragment's
// interpolated w.
func perspectiveWeights(lambda [3]float64, invW [3]float64) (weights [3]float64, interpW float64) {
	denom := lambda[0]*invW[0] + lambda[1]*invW[1] + lambda[2]*invW[2]
	if denom == 0 {
		return [3]float64{0, 0, 0}, 0
	}
	for i := 0; i < 3; i++ {
		weights[i] = lambda[i] * invW[i] / denom
	}
	return weights, 1 / denom
}

func readF64(b []byte) float64 {
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(b[i]) << (8 * i)
	}
	return math.Float64frombits(bits)
}

func writeF64(b []byte, v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * i))
	}
}
