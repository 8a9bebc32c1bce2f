// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package srpobj loads a minimal Wavefront OBJ subset (v/vt/vn/f, triangle
// faces only) into an srp.VertexBuffer/srp.IndexBuffer pair. It is a
// collaborator, not part of the core pipeline (spec.md §1 names the OBJ
// mesh loader as external). Grounded on
// original_source/examples/utility/objparser.c's loadOBJMesh: the same
// "positions/uvs/normals accumulate, faces emit flattened vertices"
// approach, rewritten with bufio.Scanner instead of manual fixed-size
// arrays and fgets.
package srpobj

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/srp"
)

// Vertex is one flattened OBJ vertex: position, texture coordinate, and
// normal, matching the C original's OBJVertex.
type Vertex struct {
	Position [3]float64
	UV       [2]float64
	Normal   [3]float64
}

// bytesPerVertex is the size of one Vertex packed as 8 consecutive f64
// fields (matching the struct's field order).
const bytesPerVertex = 8 * 8

// Mesh is a loaded OBJ mesh, pre-flattened into a vertex/index pair: the
// original's "every face corner becomes one unique vertex, with a
// trivial 0,1,2,... index" behavior is preserved rather than deduplicated,
// since the C original does not deduplicate either.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Load parses a Wavefront OBJ stream. Only triangular `f v/vt/vn ...`
// faces are supported, matching the original parser's sscanf format;
// any other face format is reported via err rather than silently
// dropped the way the C original does (fprintf to stderr and continue).
func Load(r io.Reader) (*Mesh, error) {
	var positions [][3]float64
	var uvs [][2]float64
	var normals [][3]float64
	mesh := &Mesh{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("srpobj: line %d: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vt":
			uv, err := parseFloats2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("srpobj: line %d: %w", lineNo, err)
			}
			uvs = append(uvs, uv)
		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("srpobj: line %d: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("srpobj: line %d: unsupported face format %q (only triangles)", lineNo, line)
			}
			for _, corner := range fields[1:] {
				vi, ti, ni, err := parseFaceCorner(corner)
				if err != nil {
					return nil, fmt.Errorf("srpobj: line %d: %w", lineNo, err)
				}
				if vi < 1 || vi > len(positions) || ti < 1 || ti > len(uvs) || ni < 1 || ni > len(normals) {
					return nil, fmt.Errorf("srpobj: line %d: face index out of range", lineNo)
				}
				v := Vertex{Position: positions[vi-1], UV: uvs[ti-1], Normal: normals[ni-1]}
				mesh.Indices = append(mesh.Indices, uint32(len(mesh.Vertices)))
				mesh.Vertices = append(mesh.Vertices, v)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("srpobj: %w", err)
	}
	return mesh, nil
}

func parseFloats3(fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) < 3 {
		return out, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats2(fields []string) ([2]float64, error) {
	var out [2]float64
	if len(fields) < 2 {
		return out, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFaceCorner(corner string) (vi, ti, ni int, err error) {
	parts := strings.Split(corner, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unsupported face corner %q (want v/vt/vn)", corner)
	}
	vi, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	ti, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	ni, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return vi, ti, ni, nil
}

// Buffers packs the mesh into an srp.VertexBuffer (position, uv, normal
// as consecutive f64 fields) and an srp.IndexBuffer (u32), ready for a
// srp.Context draw call.
func (m *Mesh) Buffers() (*srp.VertexBuffer, *srp.IndexBuffer) {
	data := make([]byte, len(m.Vertices)*bytesPerVertex)
	for i, v := range m.Vertices {
		off := i * bytesPerVertex
		putF64(data[off:], v.Position[0])
		putF64(data[off+8:], v.Position[1])
		putF64(data[off+16:], v.Position[2])
		putF64(data[off+24:], v.UV[0])
		putF64(data[off+32:], v.UV[1])
		putF64(data[off+40:], v.Normal[0])
		putF64(data[off+48:], v.Normal[1])
		putF64(data[off+56:], v.Normal[2])
	}
	vb := srp.NewVertexBuffer(bytesPerVertex)
	vb.CopyData(bytesPerVertex, data)

	idxData := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		off := i * 4
		idxData[off] = byte(idx)
		idxData[off+1] = byte(idx >> 8)
		idxData[off+2] = byte(idx >> 16)
		idxData[off+3] = byte(idx >> 24)
	}
	ib := srp.NewIndexBuffer(srp.ElementU32)
	// CopyData's error path only triggers for an unrecognized element
	// type; ElementU32 is always valid, so no Context is needed here.
	ib.CopyData(nil, srp.ElementU32, idxData)

	return vb, ib
}

func putF64(b []byte, v float64) {
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(bits >> (8 * i))
	}
}
