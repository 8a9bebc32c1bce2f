// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "math"

// rasterizeTriangle scans a set-up triangle's bounding box in row-major
// order, using incremental barycentrics and the top-left fill
// convention (§4.9). It is the template for how the C original's
// scanline traversal maps onto this pipeline, generalized from the
// teacher's active-edge-table line rasterizer
// (github.com/gogpu/gg/internal/raster.Raster) to barycentric triangle
// fill.
func rasterizeTriangle(ctx *Context, fb *Framebuffer, t *Triangle) {
	startX := t.minBX
	if startX < 0 {
		startX = 0
	}
	startY := t.minBY
	if startY < 0 {
		startY = 0
	}
	endX := t.maxBX
	if endX > fb.Width()-1 {
		endX = fb.Width() - 1
	}
	endY := t.maxBY
	if endY > fb.Height()-1 {
		endY = fb.Height() - 1
	}
	if startX > endX || startY > endY {
		return
	}

	dx := float64(startX - t.minBX)
	dy := float64(startY - t.minBY)
	rowLambda := [3]float64{
		t.lambda0[0] + t.dLambdaDx[0]*dx + t.dLambdaDy[0]*dy,
		t.lambda0[1] + t.dLambdaDx[1]*dx + t.dLambdaDy[1]*dy,
		t.lambda0[2] + t.dLambdaDx[2]*dx + t.dLambdaDy[2]*dy,
	}

	varyingDst := ctx.arena.AllocZero(t.Program.Varyings.Stride)

	for y := startY; y <= endY; y++ {
		lambda := rowLambda
		for x := startX; x <= endX; x++ {
			if triangleCovers(lambda, t.edgeTL) {
				shadeTrianglePixel(ctx, fb, t, x, y, lambda, varyingDst)
			}
			lambda[0] += t.dLambdaDx[0]
			lambda[1] += t.dLambdaDx[1]
			lambda[2] += t.dLambdaDx[2]
		}
		rowLambda[0] += t.dLambdaDy[0]
		rowLambda[1] += t.dLambdaDy[1]
		rowLambda[2] += t.dLambdaDy[2]
	}
}

// triangleCovers applies the inside test and top-left fill convention
// (§4.9): a pixel is accepted when every barycentric weight is >= 0,
// except that a weight exactly on an edge (≈0) is rejected unless that
// edge carries the top-left flag.
func triangleCovers(lambda [3]float64, edgeTL [3]bool) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(lambda[i]) < clipEpsilon && !edgeTL[i] {
			return false
		}
		if lambda[i] < 0 {
			return false
		}
	}
	return true
}

func shadeTrianglePixel(ctx *Context, fb *Framebuffer, t *Triangle, x, y int, lambda [3]float64, varyingDst []byte) {
	var weights [3]float64
	var interpW float64
	if ctx.interpolationMode == InterpolationAffine {
		weights = lambda
		interpW = 1
	} else {
		weights, interpW = perspectiveWeights(lambda, t.invW)
	}

	// Written relative to vertex 0 so a constant-depth triangle yields
	// exactly that depth despite rounding drift in the incremental
	// barycentrics (which would otherwise push z = ±1 out of [-1, 1]).
	z := t.z[0] + lambda[1]*(t.z[1]-t.z[0]) + lambda[2]*(t.z[2]-t.z[0])

	interpAttributes(ctx, t.Program.Varyings, [][]byte{t.vary[0], t.vary[1], t.vary[2]}, weights[:], varyingDst)

	fsIn := FragmentShaderInput{
		Uniform:     t.Program.Uniform,
		Varying:     varyingDst,
		FragCoord:   Vec4{X: float64(x) + 0.5, Y: float64(y) + 0.5, Z: z, W: interpW},
		FrontFacing: t.IsFrontFacing,
		PrimitiveID: t.PrimitiveID,
	}
	var fsOut FragmentShaderOutput
	fsOut.FragDepth = nan()
	t.Program.FragmentShader(fsIn, &fsOut)

	depth := fsOut.FragDepth
	if math.IsNaN(depth) {
		depth = z
	}
	if !fb.DepthTest(x, y, depth) {
		return
	}
	fb.WritePixel(x, y, depth, PackRGBA8888(RGBAColor(fsOut.Color.X, fsOut.Color.Y, fsOut.Color.Z, fsOut.Color.W)))
}
