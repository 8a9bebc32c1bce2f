// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Framebuffer holds a color image and a matching depth image (§3). It is
// adapted from the teacher's Pixmap (github.com/gogpu/gg/pixmap.go),
// generalized from a single RGBA8888 buffer into the paired color+depth
// buffers the rasterizer writes (§4.2), and specialized from blended
// float colors to the packed-uint32 + strict depth-test contract this
// spec requires.
type Framebuffer struct {
	width, height int
	color         []uint32  // packed RGBA8888, R most significant byte
	depth         []float64 // NDC-space depth in [-1, 1]
}

// NewFramebuffer creates a framebuffer of the given dimensions, cleared
// to color 0x00000000 and depth -1.0.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		color:  make([]uint32, width*height),
		depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Clear resets every pixel to color 0x00000000 and depth -1.0 (§4.2).
func (fb *Framebuffer) Clear() {
	for i := range fb.color {
		fb.color[i] = 0
	}
	for i := range fb.depth {
		fb.depth[i] = -1.0
	}
}

func (fb *Framebuffer) index(x, y int) (int, bool) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0, false
	}
	return y*fb.width + x, true
}

// DepthAt returns the stored depth at (x, y). Out-of-bounds reads return
// -1.0 (the cleared value), matching the invariant that every stored
// depth is in [-1, 1].
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	i, ok := fb.index(x, y)
	if !ok {
		return -1.0
	}
	return fb.depth[i]
}

// ColorAt returns the packed RGBA8888 color at (x, y).
func (fb *Framebuffer) ColorAt(x, y int) uint32 {
	i, ok := fb.index(x, y)
	if !ok {
		return 0
	}
	return fb.color[i]
}

// DepthTest reports whether a candidate depth passes the depth test at
// (x, y): strictly greater than the stored value (§4.2, §9 open question
// (c)). Equal depths do not pass; the earlier write wins ties (§5).
func (fb *Framebuffer) DepthTest(x, y int, depth float64) bool {
	i, ok := fb.index(x, y)
	if !ok {
		return false
	}
	return depth > fb.depth[i]
}

// WritePixel stores a color and depth at (x, y), without performing a
// depth test — callers that need the test-then-write invariant should
// call DepthTest first (this is how the rasterizer uses it; see §9 open
// question (a): the test is exposed framebuffer-side but is not fused
// with the write, since the rasterizer is its only caller and already
// has to branch on pass/fail either way).
//
// depth must be in [-1, 1]; out-of-range or out-of-bounds writes are
// silently dropped (this is a core invariant the caller is responsible
// for maintaining, not a recoverable pipeline error).
func (fb *Framebuffer) WritePixel(x, y int, depth float64, packedColor uint32) {
	i, ok := fb.index(x, y)
	if !ok || depth < -1 || depth > 1 {
		return
	}
	fb.color[i] = packedColor
	fb.depth[i] = depth
}

// NDCToScreen maps a normalized-device-coordinate point to screen space
// (§4.2), flipping Y so the image origin is top-left.
func (fb *Framebuffer) NDCToScreen(ndc Vec4) Vec4 {
	return Vec4{
		X: (float64(fb.width-1) / 2) * (ndc.X + 1),
		Y: -(float64(fb.height-1) / 2) * (ndc.Y - 1),
		Z: ndc.Z,
		W: ndc.W,
	}
}

// ToImage converts the framebuffer's color buffer to a standard
// image.RGBA, for collaborators (PNG export, on-screen presentation).
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, packed := range fb.color {
		c := UnpackRGBA8888(packed)
		img.Set(i%fb.width, i/fb.width, color.NRGBA{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
			A: uint8(c.A * 255),
		})
	}
	return img
}

// ColorBytes returns the color buffer serialized in network (big-endian)
// byte order, so the first byte of each pixel in memory is its red
// channel (§4.2's packing note).
func (fb *Framebuffer) ColorBytes() []byte {
	out := make([]byte, len(fb.color)*4)
	for i, packed := range fb.color {
		binary.BigEndian.PutUint32(out[i*4:], packed)
	}
	return out
}
