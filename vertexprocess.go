// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

import "github.com/gogpu/srp/internal/vscache"

// vsCacheEntry is the post-vertex-shader cache payload (§3's "PostVS
// cache entry"): the raw clip-space vertex shader output (perspective
// divide not yet applied — clipping in §4.6 needs pre-divide clip
// space) and the precomputed reciprocal of clip-space w. Triangle and
// line setup (§4.7) perform the actual divide; they recompute 1/w from
// the position they receive and do not read InvW.
type vsCacheEntry struct {
	Position Vec4
	Varying  []byte
	InvW     float64
}

// vertexProcessor bundles what one draw call needs to resolve a stream
// position to a (possibly cached) vertex-shader output (§4.4).
type vertexProcessor struct {
	ctx     *Context
	vb      *VertexBuffer
	ib      *IndexBuffer // nil when the draw has no index buffer
	program *ShaderProgram
	cache   *vscache.Cache[vsCacheEntry]
	minVI   int
}

// vertexIndexRange computes (minVI, maxVI), the decoded vertex index
// bounds for stream positions [start, start+count) (§4.4): when an
// index buffer is present its decoded contents are scanned; otherwise
// the stream range itself is the vertex index range.
func vertexIndexRange(ib *IndexBuffer, start, count int) (minVI, maxVI int) {
	if ib == nil {
		return start, start + count - 1
	}
	minVI, maxVI = -1, -1
	for i := start; i < start+count; i++ {
		vi := int(ib.At(i))
		if minVI == -1 || vi < minVI {
			minVI = vi
		}
		if vi > maxVI {
			maxVI = vi
		}
	}
	return minVI, maxVI
}

// newVertexProcessor allocates the post-VS cache for one draw and
// returns a processor ready to resolve stream positions.
func newVertexProcessor(ctx *Context, vb *VertexBuffer, ib *IndexBuffer, program *ShaderProgram, start, count int) *vertexProcessor {
	minVI, maxVI := vertexIndexRange(ib, start, count)
	size := maxVI - minVI + 1
	if size < 0 {
		size = 0
	}
	return &vertexProcessor{
		ctx:     ctx,
		vb:      vb,
		ib:      ib,
		program: program,
		cache:   vscache.New[vsCacheEntry](size),
		minVI:   minVI,
	}
}

// decodeIndex maps a stream position to a vertex index, widening
// through the index buffer when one is present.
func (vp *vertexProcessor) decodeIndex(streamPos int) int {
	if vp.ib == nil {
		return streamPos
	}
	return int(vp.ib.At(streamPos))
}

// fetch resolves a stream position to its (possibly cached)
// vertex-shader output, invoking the vertex shader at most once per
// unique vertex index for the lifetime of this processor (§4.4, §8
// property 3).
func (vp *vertexProcessor) fetch(streamPos int) vsCacheEntry {
	vi := vp.decodeIndex(streamPos)
	return vp.cache.GetOrCreate(vi-vp.minVI, func() vsCacheEntry {
		record := vp.vb.Record(vi)
		varying := vp.ctx.arena.Alloc(vp.program.Varyings.Stride)
		out := VertexShaderOutput{Varying: varying}
		vp.program.VertexShader(VertexShaderInput{
			Vertex:   record,
			Uniform:  vp.program.Uniform,
			VertexID: vi,
		}, &out)
		return vsCacheEntry{
			Position: out.Position,
			Varying:  varying,
			InvW:     1.0 / out.Position.W,
		}
	})
}
