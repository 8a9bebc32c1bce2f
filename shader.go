// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package srp

// VaryingAttr describes one attribute within a varying record: a packed
// array of ElementCount elements of ElementType (§3's "Varying record").
// The core never interprets attribute semantics — only element type,
// for interpolation dispatch (§4.8).
type VaryingAttr struct {
	ElementType  ElementType
	ElementCount int
}

// size returns the byte width of this attribute.
func (a VaryingAttr) size() int { return a.ElementType.Size() * a.ElementCount }

// VaryingLayout describes the shape of a varying record: an ordered list
// of attributes and their combined byte stride.
type VaryingLayout struct {
	Attrs  []VaryingAttr
	Stride int
}

// NewVaryingLayout computes a packed layout (no padding between
// attributes, matching the opaque-byte-block model of §3) and its total
// stride.
func NewVaryingLayout(attrs ...VaryingAttr) VaryingLayout {
	stride := 0
	for _, a := range attrs {
		stride += a.size()
	}
	return VaryingLayout{Attrs: attrs, Stride: stride}
}

// offsets returns the byte offset of each attribute in the layout.
func (l VaryingLayout) offsets() []int {
	offs := make([]int, len(l.Attrs))
	off := 0
	for i, a := range l.Attrs {
		offs[i] = off
		off += a.size()
	}
	return offs
}

// VertexShaderInput is what the core hands to a vertex shader callback
// (§3): the raw vertex record, an opaque uniform value, and the
// vertex's index into the VertexBuffer.
type VertexShaderInput struct {
	Vertex   []byte
	Uniform  any
	VertexID int
}

// VertexShaderOutput is what a vertex shader callback must fill in
// (§3): a clip-space position and a varying record. Varying is
// arena-backed storage the core owns; the shader only writes into it
// (§3's ownership note on pOutputVariables).
type VertexShaderOutput struct {
	Position Vec4
	Varying  []byte
}

// VertexShaderFunc is the vertex-shader ABI (§3, §6): no allocation, no
// return value — the shader writes directly into out.
type VertexShaderFunc func(in VertexShaderInput, out *VertexShaderOutput)

// FragmentShaderInput is what the core hands to a fragment shader
// callback (§3): the uniform value, the interpolated varying record,
// the fragment's window-space coordinate, whether the owning primitive
// is front-facing, and the primitive's ID within the draw.
type FragmentShaderInput struct {
	Uniform     any
	Varying     []byte
	FragCoord   Vec4
	FrontFacing bool
	PrimitiveID int
}

// NaNFragDepth is the sentinel a fragment shader leaves in
// FragmentShaderOutput.FragDepth to mean "use FragCoord.z" (§3, §9 open
// question (b)).
var NaNFragDepth = nan()

// FragmentShaderOutput is what a fragment shader callback must fill in
// (§3): a color and an optional depth override.
type FragmentShaderOutput struct {
	Color     Vec4
	FragDepth float64
}

// FragmentShaderFunc is the fragment-shader ABI (§3, §6).
type FragmentShaderFunc func(in FragmentShaderInput, out *FragmentShaderOutput)

// ShaderProgram bundles the user's shader callbacks, the uniform record
// they close over, and the varying layout the vertex shader promises to
// fill and the fragment shader expects to read (§3's ShaderProgram).
type ShaderProgram struct {
	Uniform        any
	VertexShader   VertexShaderFunc
	FragmentShader FragmentShaderFunc
	Varyings       VaryingLayout
}

// NewShaderProgram builds a program from its callbacks, uniform value,
// and varying attribute list.
func NewShaderProgram(uniform any, vs VertexShaderFunc, fs FragmentShaderFunc, varyings ...VaryingAttr) *ShaderProgram {
	return &ShaderProgram{
		Uniform:        uniform,
		VertexShader:   vs,
		FragmentShader: fs,
		Varyings:       NewVaryingLayout(varyings...),
	}
}
