// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "math"

// WrapMode controls how out-of-[0,1] texture coordinates are folded
// back into range before sampling (§6), grounded on the wrap spreads of
// the teacher's github.com/gogpu/gg/internal/image package
// (SpreadPad/SpreadRepeat/SpreadReflect), renamed to the GL-ish names
// this pipeline's shader ABI expects.
type WrapMode int

const (
	WrapClampToEdge WrapMode = iota
	WrapRepeat
	WrapMirroredRepeat
)

func wrapCoord(mode WrapMode, v float64) float64 {
	switch mode {
	case WrapRepeat:
		f := v - math.Floor(v)
		return f
	case WrapMirroredRepeat:
		f := math.Abs(v)
		f = f - 2*math.Floor(f/2)
		if f > 1 {
			f = 2 - f
		}
		return f
	default: // WrapClampToEdge
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
}

// Texture is a 2D image sampled in normalized UV space (§3, §6). Pixels
// are stored as straight (non-premultiplied) floating-point RGBA, one
// Color per texel, row-major with row 0 at the top — the image loader's
// contract is "row-major top-to-bottom" and the nearest-neighbor formula
// in §6 flips V to match.
type Texture struct {
	width, height int
	pixels        []Color
	wrapU, wrapV  WrapMode
}

// NewTexture creates a texture from a row-major RGBA pixel slice of
// length width*height. Default wrap mode on both axes is ClampToEdge.
func NewTexture(width, height int, pixels []Color) *Texture {
	return &Texture{width: width, height: height, pixels: pixels}
}

// NewTextureFromBytes builds a texture from an external image decoder's
// output (§6's "Image loader (external)" contract): width, height,
// channels (3 or 4), and a row-major byte buffer.
func NewTextureFromBytes(width, height, channels int, data []byte) *Texture {
	pixels := make([]Color, width*height)
	for i := range pixels {
		off := i * channels
		r := float64(data[off]) / 255
		g := float64(data[off+1]) / 255
		b := float64(data[off+2]) / 255
		a := 1.0
		if channels >= 4 {
			a = float64(data[off+3]) / 255
		}
		pixels[i] = RGBAColor(r, g, b, a)
	}
	return NewTexture(width, height, pixels)
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.height }

// SetWrap configures the wrap mode applied independently to U and V
// before sampling.
func (t *Texture) SetWrap(u, v WrapMode) {
	t.wrapU, t.wrapV = u, v
}

// Sample performs nearest-neighbor lookup at normalized coordinate
// (u, v), folding out-of-range coordinates through the configured wrap
// modes first (§6): pixel = (round((W-1)*u), round((H-1)*(1-v))).
func (t *Texture) Sample(u, v float64) Color {
	if t.width == 0 || t.height == 0 {
		return ColorTransparent
	}
	u = wrapCoord(t.wrapU, u)
	v = wrapCoord(t.wrapV, v)

	x := int(math.Round(float64(t.width-1) * u))
	y := int(math.Round(float64(t.height-1) * (1 - v)))
	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)
	return t.pixels[y*t.width+x]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
