// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "math"

// Triangle is a fully set-up triangle primitive (§3, §4.7), ready for
// the rasterizer: screen-space geometry, incremental barycentric state,
// and the per-vertex data needed to interpolate attributes.
type Triangle struct {
	Program *ShaderProgram

	screen [3]Vec2
	z      [3]float64
	invW   [3]float64
	vary   [3][]byte

	edges  [3]Vec2
	edgeTL [3]bool
	areaX2 float64

	lambda0   [3]float64
	dLambdaDx [3]float64
	dLambdaDy [3]float64

	minBX, minBY int
	maxBX, maxBY int

	IsFrontFacing bool
	PrimitiveID   int
}

// triangleSetup performs triangle setup (§4.7) over three post-clip
// clip-space vertices. Returns nil when the triangle is culled (by
// facing or by degeneracy).
func triangleSetup(ctx *Context, fb *Framebuffer, program *ShaderProgram, v0, v1, v2 clipVertex, primitiveID int) *Triangle {
	verts := [3]clipVertex{v0, v1, v2}
	var invW [3]float64
	var ndc [3]Vec4
	for i, v := range verts {
		invW[i] = 1.0 / v.Position.W
		ndc[i] = Vec4{
			X: v.Position.X * invW[i],
			Y: v.Position.Y * invW[i],
			Z: v.Position.Z * invW[i],
			W: 1,
		}
	}

	// Signed area in NDC; CCW iff S > 0 (§4.7 step 2).
	e01 := ndc[1].Vec2From3().Sub(ndc[0].Vec2From3())
	e02 := ndc[2].Vec2From3().Sub(ndc[0].Vec2From3())
	s := e01.Cross(e02)

	frontFacing := (s > 0) == (ctx.frontFace == FrontFaceCCW)
	switch ctx.cullFace {
	case CullFrontAndBack:
		return nil
	case CullFront:
		if frontFacing {
			return nil
		}
	case CullBack:
		if !frontFacing {
			return nil
		}
	}

	if s < 0 {
		// Native winding is CW: normalize to CCW for rasterization
		// (§4.7 step 4). The swap is by value here since verts/invW/
		// ndc/vary are all local copies, not shared aliases.
		verts[1], verts[2] = verts[2], verts[1]
		invW[1], invW[2] = invW[2], invW[1]
		ndc[1], ndc[2] = ndc[2], ndc[1]
	}

	var screen [3]Vec2
	var z [3]float64
	for i := range ndc {
		sp := fb.NDCToScreen(ndc[i])
		screen[i] = Vec2{X: sp.X, Y: sp.Y}
		z[i] = sp.Z
	}

	e0 := screen[1].Sub(screen[0])
	e1 := screen[2].Sub(screen[1])
	e2 := screen[0].Sub(screen[2])

	areaX2 := math.Abs(e0.Cross(e2))
	if areaX2 <= clipEpsilon {
		ctx.emit(SeverityNotification, SourceSetup, "triangle %d: degenerate, culled", primitiveID)
		return nil
	}

	minX := math.Min(screen[0].X, math.Min(screen[1].X, screen[2].X))
	minY := math.Min(screen[0].Y, math.Min(screen[1].Y, screen[2].Y))
	maxX := math.Max(screen[0].X, math.Max(screen[1].X, screen[2].X))
	maxY := math.Max(screen[0].Y, math.Max(screen[1].Y, screen[2].Y))

	t := &Triangle{
		Program:       program,
		screen:        screen,
		z:             z,
		invW:          invW,
		vary:          [3][]byte{verts[0].Varying, verts[1].Varying, verts[2].Varying},
		edges:         [3]Vec2{e0, e1, e2},
		areaX2:        areaX2,
		minBX:         int(math.Floor(minX)),
		minBY:         int(math.Floor(minY)),
		maxBX:         int(math.Ceil(maxX)),
		maxBY:         int(math.Ceil(maxY)),
		IsFrontFacing: frontFacing,
		PrimitiveID:   primitiveID,
	}

	for i, e := range t.edges {
		t.edgeTL[i] = (e.X > 0 && math.Abs(e.Y) < clipEpsilon) || e.Y < 0
	}

	p := Vec2{X: float64(t.minBX) + 0.5, Y: float64(t.minBY) + 0.5}
	bp := p.Sub(screen[1])
	cp := p.Sub(screen[2])
	ap := p.Sub(screen[0])
	t.lambda0 = [3]float64{
		bp.Cross(e1) / areaX2,
		cp.Cross(e2) / areaX2,
		ap.Cross(e0) / areaX2,
	}
	t.dLambdaDx = [3]float64{e1.Y / areaX2, e2.Y / areaX2, e0.Y / areaX2}
	t.dLambdaDy = [3]float64{-e1.X / areaX2, -e2.X / areaX2, -e0.X / areaX2}

	return t
}

// clipEpsilon mirrors internal/clip.Epsilon for the "roughly zero" tests
// §9 asks for in fill-convention and degeneracy checks outside the clip
// package.
const clipEpsilon = 1e-9

// Line is a fully set-up line primitive (§3, §4.9).
type Line struct {
	Program     *ShaderProgram
	screen      [2]Vec2
	z           [2]float64
	invW        [2]float64
	vary        [2][]byte
	PrimitiveID int
}

// lineSetup maps two post-clip clip-space vertices to screen space.
func lineSetup(ctx *Context, fb *Framebuffer, program *ShaderProgram, v0, v1 clipVertex, primitiveID int) *Line {
	verts := [2]clipVertex{v0, v1}
	var invW [2]float64
	var screen [2]Vec2
	var z [2]float64
	for i, v := range verts {
		invW[i] = 1.0 / v.Position.W
		ndc := Vec4{
			X: v.Position.X * invW[i],
			Y: v.Position.Y * invW[i],
			Z: v.Position.Z * invW[i],
			W: 1,
		}
		sp := fb.NDCToScreen(ndc)
		screen[i] = Vec2{X: sp.X, Y: sp.Y}
		z[i] = sp.Z
	}
	return &Line{
		Program:     program,
		screen:      screen,
		z:           z,
		invW:        invW,
		vary:        [2][]byte{verts[0].Varying, verts[1].Varying},
		PrimitiveID: primitiveID,
	}
}

// Point is a fully set-up point primitive (§3, §4.9).
type Point struct {
	Program     *ShaderProgram
	NDC         Vec4
	Varying     []byte
	PrimitiveID int
}

// pointSetup wraps a single (unclipped) clip-space vertex; the rasterizer
// performs the NDC-to-screen mapping itself since it needs the raw NDC
// position to recompute per §4.9.
func pointSetup(program *ShaderProgram, v clipVertex, primitiveID int) *Point {
	invW := 1.0 / v.Position.W
	ndc := Vec4{
		X: v.Position.X * invW,
		Y: v.Position.Y * invW,
		Z: v.Position.Z * invW,
		W: 1,
	}
	return &Point{Program: program, NDC: ndc, Varying: v.Varying, PrimitiveID: primitiveID}
}
