// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "math"

// rasterizePoint maps a point primitive to a pointSize x pointSize
// screen-space square and emits one fragment per covered pixel center
// (§4.9). A non-positive pointSize emits nothing.
func rasterizePoint(ctx *Context, fb *Framebuffer, p *Point, pointSize float64) {
	if pointSize <= 0 {
		return
	}
	screen := fb.NDCToScreen(p.NDC)
	half := pointSize / 2

	// The square is the half-open box [center-half, center+half) on each
	// axis, so an integral pointSize covers exactly pointSize pixel
	// centers (§4.9). Bound the scan generously, then test membership
	// per pixel rather than trying to round the box edges to pixel
	// indices directly.
	minX := int(math.Floor(screen.X - half))
	minY := int(math.Floor(screen.Y - half))
	maxX := int(math.Ceil(screen.X + half))
	maxY := int(math.Ceil(screen.Y + half))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > fb.Width()-1 {
		maxX = fb.Width() - 1
	}
	if maxY > fb.Height()-1 {
		maxY = fb.Height() - 1
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		if py < screen.Y-half || py >= screen.Y+half {
			continue
		}
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			if px < screen.X-half || px >= screen.X+half {
				continue
			}
			fsIn := FragmentShaderInput{
				Uniform:     p.Program.Uniform,
				Varying:     p.Varying,
				FragCoord:   Vec4{X: float64(x) + 0.5, Y: float64(y) + 0.5, Z: screen.Z, W: screen.W},
				FrontFacing: true,
				PrimitiveID: p.PrimitiveID,
			}
			var fsOut FragmentShaderOutput
			fsOut.FragDepth = nan()
			p.Program.FragmentShader(fsIn, &fsOut)

			depth := fsOut.FragDepth
			if math.IsNaN(depth) {
				depth = screen.Z
			}
			if !fb.DepthTest(x, y, depth) {
				continue
			}
			fb.WritePixel(x, y, depth, PackRGBA8888(RGBAColor(fsOut.Color.X, fsOut.Color.Y, fsOut.Color.Z, fsOut.Color.W)))
		}
	}
}
