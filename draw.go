// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

// DrawArrays issues a draw call over a stream range of vb directly
// (§4.10, §6): vertex index == stream position, no index buffer
// involved.
func (c *Context) DrawArrays(fb *Framebuffer, vb *VertexBuffer, program *ShaderProgram, kind PrimitiveKind, start, count int) {
	c.draw(fb, vb, nil, program, kind, start, count)
}

// DrawElements issues a draw call over a stream range decoded through
// ib (§4.10, §6): stream position i reads vertex index ib.At(i).
func (c *Context) DrawElements(fb *Framebuffer, vb *VertexBuffer, ib *IndexBuffer, program *ShaderProgram, kind PrimitiveKind, start, count int) {
	c.draw(fb, vb, ib, program, kind, start, count)
}

// draw is the shared entry point behind DrawArrays/DrawElements (§4.10):
// bounds check → assembly → clip → setup → rasterize → fragment shader
// → framebuffer write, then arena reset.
func (c *Context) draw(fb *Framebuffer, vb *VertexBuffer, ib *IndexBuffer, program *ShaderProgram, kind PrimitiveKind, start, count int) {
	defer c.resetArena()

	if count <= 0 || start < 0 {
		c.emit(SeverityError, SourceAssembly, "draw: invalid range start=%d count=%d", start, count)
		return
	}

	bufferSize := vb.Count()
	if ib != nil {
		bufferSize = ib.Count()
	}
	if start+count-1 >= bufferSize {
		c.emit(SeverityError, SourceAssembly, "draw: stream range [%d,%d) exceeds buffer size %d", start, start+count, bufferSize)
		return
	}

	vp := newVertexProcessor(c, vb, ib, program, start, count)

	switch {
	case kind.IsTriangleLike():
		var tris []*Triangle
		tris = assembleTriangles(c, fb, vp, program, kind, start, count, tris)
		for _, t := range tris {
			rasterizeTriangle(c, fb, t)
		}
	case kind.IsLineLike():
		var lines []*Line
		lines = assembleLines(c, fb, vp, program, kind, start, count, lines)
		for _, l := range lines {
			rasterizeLine(c, fb, l)
		}
	case kind == Points:
		var points []*Point
		points = assemblePoints(c, vp, program, start, count, points)
		for _, p := range points {
			rasterizePoint(c, fb, p, c.pointSize)
		}
	default:
		c.emit(SeverityError, SourceAssembly, "draw: unknown primitive kind %v", kind)
	}
}
