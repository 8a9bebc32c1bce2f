// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "math"

// rasterizeLine steps a set-up line from its first to second endpoint in
// screen space, sampling one fragment per unit step (§4.9).
func rasterizeLine(ctx *Context, fb *Framebuffer, l *Line) {
	dx := l.screen[1].X - l.screen[0].X
	dy := l.screen[1].Y - l.screen[0].Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}

	varyingDst := ctx.arena.AllocZero(l.Program.Varyings.Stride)

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		w := [2]float64{1 - t, t}

		var weights [2]float64
		var interpW float64
		if ctx.interpolationMode == InterpolationAffine {
			weights = w
			interpW = 1
		} else {
			weights, interpW = perspectiveWeights2(w, l.invW)
		}

		x := l.screen[0].X + dx*t
		y := l.screen[0].Y + dy*t
		z := l.z[0]*w[0] + l.z[1]*w[1]

		interpAttributes(ctx, l.Program.Varyings, [][]byte{l.vary[0], l.vary[1]}, weights[:], varyingDst)

		px := int(math.Round(x))
		py := int(math.Round(y))

		fsIn := FragmentShaderInput{
			Uniform:     l.Program.Uniform,
			Varying:     varyingDst,
			FragCoord:   Vec4{X: float64(px) + 0.5, Y: float64(py) + 0.5, Z: z, W: interpW},
			FrontFacing: true,
			PrimitiveID: l.PrimitiveID,
		}
		var fsOut FragmentShaderOutput
		fsOut.FragDepth = nan()
		l.Program.FragmentShader(fsIn, &fsOut)

		depth := fsOut.FragDepth
		if math.IsNaN(depth) {
			depth = z
		}
		if !fb.DepthTest(px, py, depth) {
			continue
		}
		fb.WritePixel(px, py, depth, PackRGBA8888(RGBAColor(fsOut.Color.X, fsOut.Color.Y, fsOut.Color.Z, fsOut.Color.W)))
	}
}

// perspectiveWeights2 is perspectiveWeights specialized to a 2-vertex
// primitive (line endpoints).
func perspectiveWeights2(w [2]float64, invW [2]float64) (weights [2]float64, interpW float64) {
	denom := w[0]*invW[0] + w[1]*invW[1]
	if denom == 0 {
		return [2]float64{0, 0}, 0
	}
	weights[0] = w[0] * invW[0] / denom
	weights[1] = w[1] * invW[1] / denom
	return weights, 1 / denom
}
