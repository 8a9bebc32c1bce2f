// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "github.com/gogpu/srp/internal/clip"

// clipVertex is the vertex representation threaded through assembly and
// clipping (§4.6): clip-space position (perspective divide not yet
// applied) plus a varying record. It is the generic clip package's type
// parameter instantiated for this pipeline.
type clipVertex struct {
	Position Vec4
	Varying  []byte
}

func clipVertexPos(v clipVertex) (x, y, z, w float64) {
	return v.Position.X, v.Position.Y, v.Position.Z, v.Position.W
}

// assembleTriangles builds every triangle-like primitive from a draw's
// stream range: assembly (§4.5) → vertex fetch (§4.4) → polygon clip +
// fan retriangulation (§4.6) → triangle setup (§4.7). Results are
// appended to out.
func assembleTriangles(ctx *Context, fb *Framebuffer, vp *vertexProcessor, program *ShaderProgram, kind PrimitiveKind, start, count int, out []*Triangle) []*Triangle {
	n := PrimitiveCount(kind, count)
	primID := 0
	for k := 0; k < n; k++ {
		idx, ok := StreamIndices(kind, k, count)
		if !ok {
			ctx.emit(SeverityError, SourceAssembly, "unknown primitive kind %v", kind)
			return out
		}
		tri := [3]clipVertex{}
		for i, off := range idx {
			e := vp.fetch(start + off)
			tri[i] = clipVertex{Position: e.Position, Varying: e.Varying}
		}

		lerp := func(a, b clipVertex, t float64) clipVertex {
			dst := ctx.arena.AllocZero(program.Varyings.Stride)
			lerpVaryings(ctx, program.Varyings, a.Varying, b.Varying, t, dst)
			return clipVertex{Position: a.Position.Lerp(b.Position, t), Varying: dst}
		}

		poly := clip.Polygon(tri[:], clipVertexPos, lerp)
		for i := 1; i+1 < len(poly); i++ {
			if t := triangleSetup(ctx, fb, program, poly[0], poly[i], poly[i+1], primID); t != nil {
				out = append(out, t)
			}
		}
		primID++
	}
	return out
}

// assembleLines builds every line-like primitive from a draw's stream
// range: assembly (§4.5) → vertex fetch (§4.4) → parametric line clip
// (§4.6) → line setup.
func assembleLines(ctx *Context, fb *Framebuffer, vp *vertexProcessor, program *ShaderProgram, kind PrimitiveKind, start, count int, out []*Line) []*Line {
	n := PrimitiveCount(kind, count)
	primID := 0
	for k := 0; k < n; k++ {
		idx, ok := StreamIndices(kind, k, count)
		if !ok {
			ctx.emit(SeverityError, SourceAssembly, "unknown primitive kind %v", kind)
			return out
		}
		e0 := vp.fetch(start + idx[0])
		e1 := vp.fetch(start + idx[1])
		v0 := clipVertex{Position: e0.Position, Varying: e0.Varying}
		v1 := clipVertex{Position: e1.Position, Varying: e1.Varying}

		t0, t1, ok := clip.Line(v0.Position.X, v0.Position.Y, v0.Position.Z, v0.Position.W,
			v1.Position.X, v1.Position.Y, v1.Position.Z, v1.Position.W)
		if !ok {
			primID++
			continue
		}

		c0, c1 := v0, v1
		if t0 != 0 {
			dst := ctx.arena.AllocZero(program.Varyings.Stride)
			lerpVaryings(ctx, program.Varyings, v0.Varying, v1.Varying, t0, dst)
			c0 = clipVertex{Position: v0.Position.Lerp(v1.Position, t0), Varying: dst}
		}
		if t1 != 1 {
			dst := ctx.arena.AllocZero(program.Varyings.Stride)
			lerpVaryings(ctx, program.Varyings, v0.Varying, v1.Varying, t1, dst)
			c1 = clipVertex{Position: v0.Position.Lerp(v1.Position, t1), Varying: dst}
		}

		out = append(out, lineSetup(ctx, fb, program, c0, c1, primID))
		primID++
	}
	return out
}

// assemblePoints builds every POINTS primitive from a draw's stream
// range: assembly (§4.5) → vertex fetch (§4.4). Points are not clipped
// against the clip-space planes (§4.6 only specifies polygon and line
// clipping); out-of-view points simply rasterize no visible fragments.
func assemblePoints(ctx *Context, vp *vertexProcessor, program *ShaderProgram, start, count int, out []*Point) []*Point {
	n := PrimitiveCount(Points, count)
	for k := 0; k < n; k++ {
		idx, _ := StreamIndices(Points, k, count)
		e := vp.fetch(start + idx[0])
		out = append(out, pointSetup(program, clipVertex{Position: e.Position, Varying: e.Varying}, k))
	}
	return out
}
