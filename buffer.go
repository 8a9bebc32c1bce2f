// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "fmt"

// ElementType identifies the primitive numeric type backing one element
// of a vertex attribute or one index of an IndexBuffer (§3, §4.3).
type ElementType int

const (
	ElementU8 ElementType = iota
	ElementU16
	ElementU32
	ElementU64
	ElementF32
	ElementF64
)

// Size returns the width in bytes of one element of this type, or 0 for
// an unrecognized type.
func (t ElementType) Size() int {
	switch t {
	case ElementU8:
		return 1
	case ElementU16:
		return 2
	case ElementU32, ElementF32:
		return 4
	case ElementU64, ElementF64:
		return 8
	default:
		return 0
	}
}

func (t ElementType) String() string {
	switch t {
	case ElementU8:
		return "u8"
	case ElementU16:
		return "u16"
	case ElementU32:
		return "u32"
	case ElementU64:
		return "u64"
	case ElementF32:
		return "f32"
	case ElementF64:
		return "f64"
	default:
		return fmt.Sprintf("ElementType(%d)", int(t))
	}
}

// VertexBuffer is an opaque, strided array of vertex records (§3, §4.3).
// Its contents mean nothing to the core; only the shader interprets the
// record layout.
type VertexBuffer struct {
	bytesPerVertex int
	count          int
	data           []byte
}

// NewVertexBuffer creates an empty vertex buffer with the given stride.
func NewVertexBuffer(bytesPerVertex int) *VertexBuffer {
	return &VertexBuffer{bytesPerVertex: bytesPerVertex}
}

// CopyData replaces the buffer's contents, recomputing count from
// bytesPerVertex (§4.3). A stride of 0 leaves count at 0.
func (vb *VertexBuffer) CopyData(bytesPerVertex int, src []byte) {
	vb.bytesPerVertex = bytesPerVertex
	vb.data = append(vb.data[:0], src...)
	if bytesPerVertex > 0 {
		vb.count = len(vb.data) / bytesPerVertex
	} else {
		vb.count = 0
	}
}

// Count returns the number of whole vertex records currently stored.
func (vb *VertexBuffer) Count() int { return vb.count }

// Stride returns the configured bytes-per-vertex.
func (vb *VertexBuffer) Stride() int { return vb.bytesPerVertex }

// Record returns the raw bytes of the vertex at index i, or nil if i is
// out of range.
func (vb *VertexBuffer) Record(i int) []byte {
	if i < 0 || i >= vb.count {
		return nil
	}
	off := i * vb.bytesPerVertex
	return vb.data[off : off+vb.bytesPerVertex]
}

// IndexBuffer is an opaque array of integer indices of a configurable
// element width (§3, §4.3). Reads always widen to uint64.
type IndexBuffer struct {
	elementType ElementType
	count       int
	data        []byte
}

// NewIndexBuffer creates an empty index buffer of the given element
// type.
func NewIndexBuffer(elementType ElementType) *IndexBuffer {
	return &IndexBuffer{elementType: elementType}
}

// CopyData replaces the buffer's contents, recomputing count from the
// element type's width. An unrecognized element type is reported via
// the Context's emit and leaves the buffer empty (§4.3's "unknown type" contract).
func (ib *IndexBuffer) CopyData(c *Context, elementType ElementType, src []byte) {
	width := elementType.Size()
	if width == 0 {
		c.emit(SeverityError, SourceBuffer, "index buffer: unknown element type %v", elementType)
		ib.data = ib.data[:0]
		ib.count = 0
		return
	}
	ib.elementType = elementType
	ib.data = append(ib.data[:0], src...)
	ib.count = len(ib.data) / width
}

// Count returns the number of whole indices currently stored.
func (ib *IndexBuffer) Count() int { return ib.count }

// ElementType returns the configured index element type.
func (ib *IndexBuffer) ElementType() ElementType { return ib.elementType }

// At reads the index at position i, widened to uint64. Returns 0 for an
// out-of-range position or an unrecognized element type; callers are
// expected to have validated i < Count() first (§4.5's bounds check
// happens before any index is read).
func (ib *IndexBuffer) At(i int) uint64 {
	width := ib.elementType.Size()
	if width == 0 || i < 0 || i >= ib.count {
		return 0
	}
	off := i * width
	var v uint64
	for b := 0; b < width; b++ {
		v |= uint64(ib.data[off+b]) << (8 * b)
	}
	return v
}
