// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package srp implements a software-only, programmable 3D rasterization
// pipeline: a fixed subset of OpenGL's draw path executed entirely on the
// CPU. Given a vertex buffer, an optional index buffer, and a user-supplied
// vertex/fragment shader pair, [Context.DrawArrays] and
// [Context.DrawElements] produce an RGBA8888 color image and a matching
// depth image.
//
// # Pipeline
//
// A draw call flows through the following stages, in order:
//
//  1. Primitive assembly ([PrimitiveKind]) maps stream positions to vertex
//     indices.
//  2. Vertex processing runs the vertex shader once per unique vertex index,
//     memoized in a post-vertex-shader cache for the duration of the draw.
//  3. Clipping removes/splits primitives against the six clip-space planes.
//  4. Triangle/line/point setup performs the perspective divide, back-face
//     culling, and screen-space mapping.
//  5. Rasterization walks pixel centers, interpolates varyings, invokes the
//     fragment shader, and writes color/depth into the [Framebuffer].
//
// # Scope
//
// srp performs no GPU calls. Windowing/presentation, mesh loading, texture
// decoding, and timing are external collaborators; see the srptex, srpobj,
// and srptime packages for minimal implementations of those concerns.
package srp
