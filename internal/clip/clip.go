// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package clip implements clip-space polygon and line clipping (§4.6):
// Sutherland-Hodgman against the six clip planes for polygons, and
// Cohen-Sutherland-style parametric clipping for lines. It is grounded
// on the outcode/t-parameter idiom of the teacher's
// github.com/gogpu/gg/internal/clip.EdgeClipper (Cohen-Sutherland line
// clipping against a 2D rectangle), generalized here from a 2D
// axis-aligned rect to the six planes of clip space.
//
// The package is deliberately generic over the vertex type: callers
// supply position accessors and a lerp function, so the pipeline's
// clipVertex (which also carries a varying record the clipper
// knows nothing about) can be clipped without an import cycle back into
// the root package.
package clip

import "math"

// Epsilon is used both for "roughly zero" distance-ratio stability and
// for detecting degenerate edges (§9 design notes).
const Epsilon = 1e-9

// Plane identifies one of the six clip-space half-spaces.
type Plane int

const (
	Left Plane = iota
	Right
	Bottom
	Top
	Near
	Far
)

// Planes lists the six planes in the order spec.md §4.6 requires them
// to be applied: LEFT, RIGHT, BOTTOM, TOP, NEAR, FAR.
var Planes = [6]Plane{Left, Right, Bottom, Top, Near, Far}

// Distance returns the signed distance of a clip-space point (x, y, z, w)
// to the given plane. A vertex is inside the plane iff Distance >= 0.
func Distance(p Plane, x, y, z, w float64) float64 {
	switch p {
	case Left:
		return x + w
	case Right:
		return w - x
	case Bottom:
		return y + w
	case Top:
		return w - y
	case Near:
		return z + w
	case Far:
		return w - z
	default:
		return 0
	}
}

// Polygon clips a (convex) polygon against all six clip planes in turn
// using Sutherland-Hodgman. pos extracts the clip-space position of a
// vertex; lerp builds a new vertex at parameter t between a and b,
// including whatever varying data the caller's vertex type carries —
// always affine, since perspective divide has not happened yet (§4.6).
//
// Returns an empty slice if the polygon is fully clipped away.
func Polygon[V any](poly []V, pos func(V) (x, y, z, w float64), lerp func(a, b V, t float64) V) []V {
	for _, p := range Planes {
		if len(poly) == 0 {
			return poly
		}
		poly = clipPlane(poly, p, pos, lerp)
	}
	return poly
}

func clipPlane[V any](poly []V, p Plane, pos func(V) (float64, float64, float64, float64), lerp func(a, b V, t float64) V) []V {
	n := len(poly)
	out := make([]V, 0, n+1)

	for i := 0; i < n; i++ {
		prev := poly[(i-1+n)%n]
		cur := poly[i]

		xp, yp, zp, wp := pos(prev)
		xc, yc, zc, wc := pos(cur)
		dPrev := Distance(p, xp, yp, zp, wp)
		dCur := Distance(p, xc, yc, zc, wc)

		prevIn := dPrev >= 0
		curIn := dCur >= 0

		if curIn {
			if !prevIn && math.Abs(dPrev-dCur) > Epsilon {
				t := dPrev / (dPrev - dCur)
				out = append(out, lerp(prev, cur, t))
			}
			out = append(out, cur)
		} else if prevIn && math.Abs(dPrev-dCur) > Epsilon {
			t := dPrev / (dPrev - dCur)
			out = append(out, lerp(prev, cur, t))
		}
	}

	return out
}

// Line clips a line segment against all six clip planes using a
// parametric Cohen-Sutherland-style scheme (§4.6): t0 and t1 bound the
// surviving sub-segment of [p0, p1]. ok is false when the segment is
// fully outside (t0 would exceed t1).
func Line(x0, y0, z0, w0, x1, y1, z1, w1 float64) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1

	for _, p := range Planes {
		da := Distance(p, x0, y0, z0, w0)
		db := Distance(p, x1, y1, z1, w1)

		if da < 0 && db < 0 {
			return 0, 0, false
		}

		if (da < 0) != (db < 0) && math.Abs(da-db) > Epsilon {
			t := da / (da - db)
			if da < 0 {
				if t > t0 {
					t0 = t
				}
			} else if t < t1 {
				t1 = t
			}
		}

		if t0 > t1 {
			return 0, 0, false
		}
	}

	return t0, t1, true
}
