// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

// PrimitiveKind names the way a vertex stream is grouped into
// primitives (§4.5).
type PrimitiveKind int

const (
	Points PrimitiveKind = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

func (k PrimitiveKind) String() string {
	switch k {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineStrip:
		return "line-strip"
	case LineLoop:
		return "line-loop"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	case TriangleFan:
		return "triangle-fan"
	default:
		return "unknown-primitive"
	}
}

// IsTriangleLike reports whether this kind assembles into 3-vertex
// primitives.
func (k PrimitiveKind) IsTriangleLike() bool {
	return k == Triangles || k == TriangleStrip || k == TriangleFan
}

// IsLineLike reports whether this kind assembles into 2-vertex
// primitives.
func (k PrimitiveKind) IsLineLike() bool {
	return k == Lines || k == LineStrip || k == LineLoop
}

// PrimitiveCount returns the number of primitives a stream of count
// vertices assembles into under kind (§4.5's "#primitives(n)" column).
func PrimitiveCount(kind PrimitiveKind, count int) int {
	switch kind {
	case Points:
		return count
	case Lines:
		return count / 2
	case LineStrip:
		if count < 1 {
			return 0
		}
		return count - 1
	case LineLoop:
		if count < 2 {
			return 0
		}
		return count
	case Triangles:
		return count / 3
	case TriangleStrip, TriangleFan:
		if count < 2 {
			return 0
		}
		return count - 2
	default:
		return 0
	}
}

// StreamIndices maps primitive k (0-based, within [0, PrimitiveCount))
// to the stream positions it reads, relative to the draw's start index
// (§4.5's table). The returned slice has length 1 for points, 2 for
// lines, 3 for triangles.
//
// ok is false for an unrecognized kind; callers should treat that as the
// "unknown primitive" failure case of §4.11.
func StreamIndices(kind PrimitiveKind, k, count int) (indices []int, ok bool) {
	switch kind {
	case Points:
		return []int{k}, true
	case Lines:
		return []int{2 * k, 2*k + 1}, true
	case LineStrip:
		return []int{k, k + 1}, true
	case LineLoop:
		return []int{k, (k + 1) % count}, true
	case Triangles:
		return []int{3 * k, 3*k + 1, 3*k + 2}, true
	case TriangleStrip:
		if k%2 == 0 {
			return []int{k, k + 1, k + 2}, true
		}
		// Odd-swap: the first two stream indices trade places so the
		// visible winding matches the even triangles (§4.5).
		return []int{k + 1, k, k + 2}, true
	case TriangleFan:
		return []int{0, k + 1, k + 2}, true
	default:
		return nil, false
	}
}
